package domain

import "time"

// Session binds a server-side session id to exactly one user.
type Session struct {
	SessionID string    `json:"sessionID"`
	UserID    string    `json:"userID"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired checks if the session has expired.
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(time.Now())
}

// Identity is the per-request state: anonymous when UserID is empty.
type Identity struct {
	UserID string
}

// Anonymous is the identity of a request without a valid session.
var Anonymous = Identity{}

// Authenticated returns the identity for userID.
func Authenticated(userID string) Identity {
	return Identity{UserID: userID}
}

// IsAuthenticated reports whether the identity carries a user.
func (i Identity) IsAuthenticated() bool {
	return i.UserID != ""
}
