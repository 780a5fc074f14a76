package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/daily_journal_app/internal/apperrors"
	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_journal_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/daily_journal_app/internal/core/ports/services"
	"github.com/SscSPs/daily_journal_app/internal/platform/config"
	"github.com/SscSPs/daily_journal_app/internal/utils"
	"github.com/google/uuid"
)

// sessionService signs tokens that point at server-side session records.
// A token is only honoured while its record exists and names the same user.
type sessionService struct {
	BaseService
	store  portsrepo.SessionStore
	secret string
	issuer string
	ttl    time.Duration
}

// NewSessionService creates a session service backed by store.
func NewSessionService(cfg *config.Config, store portsrepo.SessionStore) portssvc.SessionSvcFacade {
	return &sessionService{
		store:  store,
		secret: cfg.SessionSecret,
		issuer: cfg.SessionIssuer,
		ttl:    cfg.SessionTTL,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, userID string) (string, *domain.Session, error) {
	if userID == "" {
		return "", nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	session := domain.Session{
		SessionID: uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.store.Save(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to save session", slog.String("user_id", userID))
		return "", nil, fmt.Errorf("failed to save session: %w", err)
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, userID, s.secret, session.ExpiresAt, s.issuer)
	if err != nil {
		_ = s.store.Delete(ctx, session.SessionID)
		s.LogError(ctx, err, "Failed to sign session token", slog.String("user_id", userID))
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, &session, nil
}

func (s *sessionService) ResolveSession(ctx context.Context, token string) (string, bool) {
	if token == "" {
		return "", false
	}

	claims, err := utils.ParseAndValidateJWT(token, s.secret, s.issuer)
	if err != nil {
		s.LogDebug(ctx, "Rejected session token", slog.String("reason", err.Error()))
		return "", false
	}

	session, err := s.store.Find(ctx, claims.ID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up session")
		}
		return "", false
	}

	if session.IsExpired() || session.UserID != claims.Subject {
		return "", false
	}
	return session.UserID, true
}

func (s *sessionService) DestroySession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	sessionID, err := utils.SessionIDFromJWT(token, s.secret)
	if err != nil {
		// Forged or garbled tokens have no record to release.
		return nil
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.LogError(ctx, err, "Failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
