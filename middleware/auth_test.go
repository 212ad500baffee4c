package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Handsol/nbc-final-project/auth"
	"github.com/Handsol/nbc-final-project/middleware"
	"github.com/Handsol/nbc-final-project/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeInto(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func sessionEchoApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", middleware.SessionMiddleware, func(c *fiber.Ctx) error {
		session := middleware.SessionFromCtx(c)
		if session == nil {
			return c.Status(200).JSON(fiber.Map{"anonymous": true})
		}
		return c.Status(200).JSON(session)
	})
	return app
}

func TestSessionMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := sessionEchoApp()

	token, err := auth.GenerateToken(models.User{ID: "user-1", Name: "Alice"}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var session models.Session
	decodeInto(t, resp, &session)
	assert.Equal(t, "user-1", session.UserID)
}

func TestSessionMiddlewareAnonymous(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := sessionEchoApp()

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)

			var body map[string]any
			decodeInto(t, resp, &body)
			assert.Equal(t, true, body["anonymous"])
		})
	}
}
