package middleware

import (
	"strings"

	domain "github.com/Elshan-Aliyev/zcorner-front/internal/core"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// RequireAdminAPI guards the JSON API mutation routes. It accepts either
// a PocketBase auth token for a users record with the admin role, or a
// signed service token minted by cmd/token-gen for headless clients.
func RequireAdminAPI(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		token := bearerToken(e)
		if token == "" {
			return e.JSON(401, map[string]string{"error": "Missing bearer token"})
		}

		record, err := app.FindAuthRecordByToken(token, core.TokenTypeAuth)
		if err == nil && record != nil &&
			record.Collection().Name == "users" &&
			record.GetString("role") == domain.RoleAdmin {
			e.Auth = record
			return e.Next()
		}

		if _, err := VerifyServiceToken(token); err == nil {
			return e.Next()
		}

		return e.JSON(401, map[string]string{"error": "Admin access required"})
	}
}

func bearerToken(e *core.RequestEvent) string {
	header := e.Request.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
