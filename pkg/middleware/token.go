package middleware

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Fallback signing key for service tokens; override with ZCORNER_API_SECRET
// in any real deployment. MUST match the one used by cmd/token-gen.
const defaultServiceSecret = "ZCORNER_V1_@771204_SERVICE_SEAL"

func serviceSecret() []byte {
	if s := os.Getenv("ZCORNER_API_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte(defaultServiceSecret)
}

// MintServiceToken creates a signed HS256 token granting headless admin
// API access for the given subject until expiry.
func MintServiceToken(subject string, expiry time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   subject,
		"scope": "admin-api",
		"exp":   expiry.Unix(),
		"iat":   time.Now().Unix(),
	})
	return token.SignedString(serviceSecret())
}

// VerifyServiceToken checks signature, expiry and scope, returning the
// subject on success.
func VerifyServiceToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return serviceSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid service token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["scope"] != "admin-api" {
		return "", errors.New("missing admin-api scope")
	}

	sub, _ := claims["sub"].(string)
	return sub, nil
}
