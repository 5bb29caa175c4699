package domain

import "time"

// User represents a registered account. PasswordHash holds the encoded
// argon2id blob and must never be exposed outside the auth layer.
type User struct {
	ID           int64
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
