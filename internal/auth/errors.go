package auth

import "errors"

var (
	ErrEmailRequired    = errors.New("Email is required")
	ErrNotAuthenticated = errors.New("Not authenticated")
)
