package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campusskills/skillswap/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, userID uuid.UUID, expiry time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":      userID.String(),
		"username": "alice",
		"role":     "user",
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(expiry).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protectedApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", JWTProtected(cfg), func(c *fiber.Ctx) error {
		id, err := UserID(c)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendString(id.String())
	})
	return app
}

func TestJWTProtectedAcceptsValidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := protectedApp(cfg)
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.JWTSecret, userID, time.Minute))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJWTProtectedRejectsMissingToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := protectedApp(cfg)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedRejectsWrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := protectedApp(cfg)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", uuid.New(), time.Minute))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedRejectsExpiredToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := protectedApp(cfg)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.JWTSecret, uuid.New(), -time.Minute))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
