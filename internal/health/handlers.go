package health

import (
	"imovia-backend/internal/pkg/response"
	"imovia-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// Handlers serves the storage health probe.
type Handlers struct {
	Storage storage.Store
}

// JSON GET /health — round-trips a read against the durable store. Absence is
// healthy; only a storage error is not.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	if _, _, err := h.Storage.Read(c.Context(), "health"); err != nil {
		return response.Error(c, "Storage unavailable", fiber.StatusServiceUnavailable, nil)
	}
	return response.Success(c, "OK", fiber.Map{"storage": "up"}, nil)
}
