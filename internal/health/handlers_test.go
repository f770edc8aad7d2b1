package health

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"imovia-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_OK(t *testing.T) {
	db, err := storage.OpenSQLite(":memory:")
	require.NoError(t, err)
	st, err := storage.NewGormStore(db)
	require.NoError(t, err)

	h := &Handlers{Storage: st}
	app := fiber.New()
	app.Get("/health", h.JSON)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "success", out["status"])
}
