package services

import (
	"context"

	"github.com/SscSPs/daily_journal_app/internal/core/domain"
)

// SessionSvcFacade issues, resolves and destroys session tokens.
type SessionSvcFacade interface {
	// CreateSession binds a fresh token to userID.
	CreateSession(ctx context.Context, userID string) (token string, session *domain.Session, err error)

	// ResolveSession returns the bound user id, or ok=false for a missing,
	// malformed, expired or revoked token. It never fails the request.
	ResolveSession(ctx context.Context, token string) (userID string, ok bool)

	// DestroySession invalidates the token. Idempotent.
	DestroySession(ctx context.Context, token string) error
}
