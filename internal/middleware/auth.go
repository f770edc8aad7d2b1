package middleware

import (
	"imovia-backend/internal/auth"
	"imovia-backend/internal/domain"
	"imovia-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const userLocal = "user"

// RequireAuth rejects requests while no one is logged in. Returns 401 with
// the standard error format.
func RequireAuth(sessions *auth.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := sessions.CurrentUser()
		if user == nil {
			return response.Unauthorized(c, "Not authenticated")
		}
		c.Locals(userLocal, user)
		return c.Next()
	}
}

// GetUser returns the session user placed by RequireAuth (nil outside it).
func GetUser(c *fiber.Ctx) *domain.User {
	if u, ok := c.Locals(userLocal).(*domain.User); ok {
		return u
	}
	return nil
}
