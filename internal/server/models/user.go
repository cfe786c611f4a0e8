// Package models holds the persistent data model of the blog backend.
package models

import "time"

// DefaultAvatar is used when registration supplies no avatar.
const DefaultAvatar = "👤"

// User is a registered account. Email doubles as the login name and is
// unique. PasswordHash is a bcrypt hash, never the raw password.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Bio          string
	Avatar       string
	CreatedAt    time.Time
}
