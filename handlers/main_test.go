package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Handsol/nbc-final-project/auth"
	"github.com/Handsol/nbc-final-project/handlers"
	"github.com/Handsol/nbc-final-project/models"
	"github.com/Handsol/nbc-final-project/router"
	"github.com/Handsol/nbc-final-project/services"
	"github.com/Handsol/nbc-final-project/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *storage.MemoryStore) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	store := storage.NewMemoryStore()
	app := fiber.New()
	router.SetupRoutes(app,
		handlers.NewAuthHandler(store, nil),
		handlers.NewTodoHandler(services.NewTodoService(store)),
		handlers.NewHabitHandler(services.NewHabitService(store)),
	)
	return app, store
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := auth.GenerateToken(models.User{ID: userID, Name: "Tester"}, time.Hour)
	require.NoError(t, err)
	return token
}

// doJSON gửi một request JSON tới app, token rỗng nghĩa là khách vãng lai
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// doRaw gửi body nguyên văn, dùng cho các case JSON hỏng
func doRaw(t *testing.T, app *fiber.App, method, path, token, raw string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(raw)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
