package services

import (
	"context"
	"time"

	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	"github.com/SscSPs/daily_journal_app/internal/dto"
)

// JournalAppSvcFacade is the request-level orchestrator. Every operation takes the
// caller's identity and enforces the authentication and ownership rules.
type JournalAppSvcFacade interface {
	// Identify resolves a session token into a request identity.
	Identify(ctx context.Context, token string) domain.Identity

	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Login verifies credentials and replaces currentToken (if any) with a new session.
	Login(ctx context.Context, req dto.LoginRequest, currentToken string) (token string, expiresAt time.Time, err error)

	// Logout destroys the session; safe without one.
	Logout(ctx context.Context, token string) error

	AddEntry(ctx context.Context, who domain.Identity, req dto.CreateEntryRequest, attachment *domain.Attachment) (*domain.JournalEntry, error)
	ListOwnEntries(ctx context.Context, who domain.Identity) ([]domain.JournalEntry, error)

	// RecentEntries is the home preview. Anonymous callers get nil without error.
	RecentEntries(ctx context.Context, who domain.Identity) ([]domain.JournalEntry, error)

	ViewEntry(ctx context.Context, who domain.Identity, entryID string) (*domain.JournalEntry, error)
}
