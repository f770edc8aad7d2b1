package domain

// User is the authenticated identity. There is no accounts table: a user
// exists only while logged in, and a new login mints a fresh ID even for an
// email seen before.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
