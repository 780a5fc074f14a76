package repositories

import (
	"context"

	"github.com/SscSPs/daily_journal_app/internal/core/domain"
)

// SessionStore keeps server-side session bindings.
type SessionStore interface {
	// Save stores the binding until session.ExpiresAt.
	Save(ctx context.Context, session domain.Session) error

	// Find returns the binding for sessionID, or apperrors.ErrNotFound.
	Find(ctx context.Context, sessionID string) (*domain.Session, error)

	// Delete removes the binding. Deleting a missing session is not an error.
	Delete(ctx context.Context, sessionID string) error
}
