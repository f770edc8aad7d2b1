package auth

import (
	"imovia-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers holds dependencies for auth endpoints.
type Handlers struct {
	Sessions *Store
}

// credentialsRequest is the login/register body. The password is accepted and
// ignored: this system performs no credential verification.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login POST /api/v1/auth/login — mint a fresh user for the email and make it
// the current session.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return response.Error(c, ErrEmailRequired.Error(), fiber.StatusBadRequest, nil)
	}
	user, err := h.Sessions.Login(c.Context(), req.Email)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Login successful", fiber.Map{"user": user}, nil)
}

// Register POST /api/v1/auth/register — behaviorally identical to Login.
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return response.Error(c, ErrEmailRequired.Error(), fiber.StatusBadRequest, nil)
	}
	user, err := h.Sessions.Register(c.Context(), req.Email)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.SuccessCreated(c, "Registration successful", fiber.Map{"user": user}, nil)
}

// Me GET /api/v1/auth/me — return the current session user.
func (h *Handlers) Me(c *fiber.Ctx) error {
	user := h.Sessions.CurrentUser()
	if user == nil {
		return response.Error(c, ErrNotAuthenticated.Error(), fiber.StatusUnauthorized, nil)
	}
	return response.Success(c, "Authenticated", fiber.Map{"user": user}, nil)
}

// Logout DELETE /api/v1/auth/logout — clear the session.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	if err := h.Sessions.Logout(c.Context()); err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Logged out successfully", nil, nil)
}
