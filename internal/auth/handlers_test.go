package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthApp(t *testing.T) (*fiber.App, *Store) {
	s, _ := setupSessionStore(t)
	h := &Handlers{Sessions: s}
	app := fiber.New()
	app.Post("/login", h.Login)
	app.Post("/register", h.Register)
	app.Get("/me", h.Me)
	app.Delete("/logout", h.Logout)
	return app, s
}

func postJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) map[string]interface{} {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	out["_status"] = float64(resp.StatusCode)
	return out
}

func TestLoginHandler_Success(t *testing.T) {
	app, s := setupAuthApp(t)

	out := postJSON(t, app, "POST", "/login", map[string]string{"email": "a@b.com", "password": "anything"})
	assert.Equal(t, float64(200), out["_status"])
	assert.Equal(t, "success", out["status"])

	user := out["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "a@b.com", user["email"])
	assert.NotEmpty(t, user["id"])
	assert.True(t, s.IsAuthenticated())
}

func TestLoginHandler_EmptyEmail(t *testing.T) {
	app, s := setupAuthApp(t)

	out := postJSON(t, app, "POST", "/login", map[string]string{"password": "x"})
	assert.Equal(t, float64(400), out["_status"])
	assert.Equal(t, "error", out["status"])
	assert.False(t, s.IsAuthenticated())
}

func TestRegisterHandler_SameBehaviorAsLogin(t *testing.T) {
	app, s := setupAuthApp(t)

	out := postJSON(t, app, "POST", "/register", map[string]string{"email": "new@b.com"})
	assert.Equal(t, float64(201), out["_status"])
	user := out["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "new@b.com", user["email"])
	assert.True(t, s.IsAuthenticated())
}

func TestMeHandler(t *testing.T) {
	app, s := setupAuthApp(t)

	out := postJSON(t, app, "GET", "/me", nil)
	assert.Equal(t, float64(401), out["_status"])

	_, err := s.Login(context.Background(), "a@b.com")
	require.NoError(t, err)

	out = postJSON(t, app, "GET", "/me", nil)
	assert.Equal(t, float64(200), out["_status"])
	user := out["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "a@b.com", user["email"])
}

func TestLogoutHandler(t *testing.T) {
	app, s := setupAuthApp(t)

	_, err := s.Login(context.Background(), "a@b.com")
	require.NoError(t, err)

	out := postJSON(t, app, "DELETE", "/logout", nil)
	assert.Equal(t, float64(200), out["_status"])
	assert.False(t, s.IsAuthenticated())
}
