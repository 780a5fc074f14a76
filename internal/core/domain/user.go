package domain

import "time"

// User represents a registered journal owner.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (UUID)
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // bcrypt hash, never the raw password
	CreatedAt    time.Time `json:"createdAt"`
}

// GetUserID returns the user's identifier.
func (u *User) GetUserID() string { return u.UserID }

// GetUsername returns the user's login name.
func (u *User) GetUsername() string { return u.Username }

// GetEmail returns the user's email address.
func (u *User) GetEmail() string { return u.Email }
