package models

// User is a registered account. PasswordHash holds a bcrypt hash and is
// never serialized.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"nombre"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
