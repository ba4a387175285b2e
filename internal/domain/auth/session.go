package auth

import (
	errs "github.com/stepexplorer/server/internal/domain/error"
)

// Session carries the authenticated user's identity through every operation
// that needs it. Passed explicitly instead of looked up from ambient global
// state so tests can inject a fake session.
type Session struct {
	UserID   string
	Username string
}

// NewSession creates a session for the given user
func NewSession(userID, username string) *Session {
	return &Session{UserID: userID, Username: username}
}

// Validate ensures the session identifies a user
func (s *Session) Validate() error {
	if s == nil || s.UserID == "" {
		return errs.ErrNotAuthenticated
	}
	return nil
}

// UserIDOrEmpty returns the user ID, tolerating a nil session
func (s *Session) UserIDOrEmpty() string {
	if s == nil {
		return ""
	}
	return s.UserID
}
