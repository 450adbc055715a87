package handler

import (
	"encoding/json"

	"github.com/Elshan-Aliyev/zcorner-front/internal/core"

	"github.com/pocketbase/pocketbase"
	pbCore "github.com/pocketbase/pocketbase/core"
)

type AuthHandler struct {
	app *pocketbase.PocketBase
}

func NewAuthHandler(app *pocketbase.PocketBase) *AuthHandler {
	return &AuthHandler{app: app}
}

type authResponse struct {
	Token string     `json:"token"`
	User  *core.User `json:"user"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(e *pbCore.RequestEvent) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}

	record, err := h.app.FindAuthRecordByEmail("users", req.Email)
	if err != nil || !record.ValidatePassword(req.Password) {
		return e.JSON(400, map[string]string{"error": "Invalid email or password"})
	}

	token, err := record.NewAuthToken()
	if err != nil {
		return e.JSON(500, map[string]string{"error": "Failed to create token"})
	}

	return e.JSON(200, authResponse{Token: token, User: recordToUser(record)})
}

// Register handles POST /api/auth/register. New accounts always get the
// "regular" role; admins are seeded or promoted out of band.
func (h *AuthHandler) Register(e *pbCore.RequestEvent) error {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}
	if req.FirstName == "" || req.Email == "" || len(req.Password) < 8 {
		return e.JSON(400, map[string]string{"error": "Missing fields or password too short"})
	}

	if existing, _ := h.app.FindAuthRecordByEmail("users", req.Email); existing != nil {
		return e.JSON(400, map[string]string{"error": "Email already registered"})
	}

	collection, err := h.app.FindCollectionByNameOrId("users")
	if err != nil {
		return e.JSON(500, map[string]string{"error": "Registration unavailable"})
	}

	record := pbCore.NewRecord(collection)
	record.SetEmail(req.Email)
	record.SetPassword(req.Password)
	record.Set("first_name", req.FirstName)
	record.Set("last_name", req.LastName)
	record.Set("role", core.RoleRegular)
	record.SetVerified(true)

	if err := h.app.Save(record); err != nil {
		return e.JSON(500, map[string]string{"error": "Failed to create account"})
	}

	token, err := record.NewAuthToken()
	if err != nil {
		return e.JSON(500, map[string]string{"error": "Failed to create token"})
	}

	return e.JSON(200, authResponse{Token: token, User: recordToUser(record)})
}

func recordToUser(rec *pbCore.Record) *core.User {
	return &core.User{
		Id:        rec.Id,
		Email:     rec.Email(),
		FirstName: rec.GetString("first_name"),
		LastName:  rec.GetString("last_name"),
		Role:      rec.GetString("role"),
	}
}
