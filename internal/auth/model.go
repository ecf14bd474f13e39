package auth

import "time"

// User is one registered account. PasswordHash holds the SHA-256 hex digest
// of the password; the JSON field names keep users.json readable by the
// game's older tooling.
type User struct {
	Username     string    `json:"-"`
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"created_at"`
}
