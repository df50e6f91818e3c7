package entity

import (
	"time"
)

// User is the aggregate root for the identity domain.
// Passwords are stored as bcrypt hashes in Password; the optional
// PrivatePassword is a second bcrypt hash used to unlock private notes.
type User struct {
	ID              string
	Email           string
	Password        string
	Name            string
	PrivatePassword *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UserRef is the author projection embedded in posts and comments.
type UserRef struct {
	ID       string
	Username string
}
