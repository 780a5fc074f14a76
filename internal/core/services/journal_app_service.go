package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/daily_journal_app/internal/apperrors"
	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	portssvc "github.com/SscSPs/daily_journal_app/internal/core/ports/services"
	"github.com/SscSPs/daily_journal_app/internal/dto"
	"github.com/go-playground/validator/v10"
)

// journalAppService applies the per-request identity rules on top of the
// credential, session, entry and attachment services.
type journalAppService struct {
	BaseService
	users       portssvc.UserSvcFacade
	sessions    portssvc.SessionSvcFacade
	entries     portssvc.EntrySvcFacade
	attachments portssvc.AttachmentSvcFacade
	events      portssvc.EventRecorder
	validate    *validator.Validate
	recentLimit int
}

// JournalAppOption configures the application service.
type JournalAppOption func(*journalAppService)

// WithEventRecorder reports auth and entry events to recorder.
func WithEventRecorder(recorder portssvc.EventRecorder) JournalAppOption {
	return func(s *journalAppService) {
		if recorder != nil {
			s.events = recorder
		}
	}
}

// WithRecentEntriesLimit sets how many entries the home preview shows.
func WithRecentEntriesLimit(limit int) JournalAppOption {
	return func(s *journalAppService) {
		if limit > 0 {
			s.recentLimit = limit
		}
	}
}

// NewJournalAppService creates the application service.
func NewJournalAppService(
	users portssvc.UserSvcFacade,
	sessions portssvc.SessionSvcFacade,
	entries portssvc.EntrySvcFacade,
	attachments portssvc.AttachmentSvcFacade,
	opts ...JournalAppOption,
) portssvc.JournalAppSvcFacade {
	s := &journalAppService{
		users:       users,
		sessions:    sessions,
		entries:     entries,
		attachments: attachments,
		events:      portssvc.NoopEventRecorder{},
		validate:    validator.New(),
		recentLimit: 3,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *journalAppService) Identify(ctx context.Context, token string) domain.Identity {
	userID, ok := s.sessions.ResolveSession(ctx, token)
	if !ok {
		return domain.Anonymous
	}
	return domain.Authenticated(userID)
}

func (s *journalAppService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	user, err := s.users.RegisterUser(ctx, req)
	if err != nil {
		s.events.AuthEvent(portssvc.EventRegister, outcomeOf(err))
		return nil, err
	}
	s.events.AuthEvent(portssvc.EventRegister, portssvc.OutcomeSuccess)
	return user, nil
}

func (s *journalAppService) Login(ctx context.Context, req dto.LoginRequest, currentToken string) (string, time.Time, error) {
	if req.Username == "" || req.Password == "" {
		s.events.AuthEvent(portssvc.EventLogin, portssvc.OutcomeRejected)
		return "", time.Time{}, apperrors.ErrAuthFailure
	}

	user, err := s.users.VerifyCredentials(ctx, req.Username, req.Password)
	if err != nil {
		s.events.AuthEvent(portssvc.EventLogin, outcomeOf(err))
		return "", time.Time{}, err
	}

	// One session per client: the token this client presented is retired first.
	if err := s.sessions.DestroySession(ctx, currentToken); err != nil {
		s.LogWarn(ctx, "Could not retire previous session", slog.String("error", err.Error()))
	}

	token, session, err := s.sessions.CreateSession(ctx, user.UserID)
	if err != nil {
		s.events.AuthEvent(portssvc.EventLogin, portssvc.OutcomeError)
		return "", time.Time{}, err
	}

	s.events.AuthEvent(portssvc.EventLogin, portssvc.OutcomeSuccess)
	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return token, session.ExpiresAt, nil
}

func (s *journalAppService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.DestroySession(ctx, token); err != nil {
		s.events.AuthEvent(portssvc.EventLogout, portssvc.OutcomeError)
		return err
	}
	s.events.AuthEvent(portssvc.EventLogout, portssvc.OutcomeSuccess)
	return nil
}

func (s *journalAppService) AddEntry(ctx context.Context, who domain.Identity, req dto.CreateEntryRequest, attachment *domain.Attachment) (*domain.JournalEntry, error) {
	if !who.IsAuthenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	// Reject bad input before anything touches storage.
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, describeValidation(err))
	}

	imageRef, err := s.attachments.StoreAttachment(ctx, who.UserID, attachment)
	if err != nil {
		s.events.StorageError()
		return nil, err
	}

	entry, err := s.entries.CreateEntry(ctx, who.UserID, domain.NewEntry{
		Title:    req.Title,
		Content:  req.Content,
		Location: &req.Location,
		Mood:     &req.Mood,
		Image:    imageRef,
	})
	if err != nil {
		if imageRef != nil {
			if discardErr := s.attachments.DiscardAttachment(ctx, *imageRef); discardErr != nil {
				s.events.StorageError()
				s.LogError(ctx, discardErr, "Orphaned attachment after failed entry insert", slog.String("ref", *imageRef))
			}
		}
		return nil, err
	}

	s.events.EntryCreated(imageRef != nil)
	return entry, nil
}

func (s *journalAppService) ListOwnEntries(ctx context.Context, who domain.Identity) ([]domain.JournalEntry, error) {
	if !who.IsAuthenticated() {
		return nil, apperrors.ErrUnauthenticated
	}
	return s.entries.ListEntriesByOwner(ctx, who.UserID, 0)
}

func (s *journalAppService) RecentEntries(ctx context.Context, who domain.Identity) ([]domain.JournalEntry, error) {
	if !who.IsAuthenticated() {
		return nil, nil
	}
	return s.entries.ListEntriesByOwner(ctx, who.UserID, s.recentLimit)
}

func (s *journalAppService) ViewEntry(ctx context.Context, who domain.Identity, entryID string) (*domain.JournalEntry, error) {
	if !who.IsAuthenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	entry, err := s.entries.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if !entry.IsOwnedBy(who.UserID) {
		s.LogWarn(ctx, "Entry access denied", slog.String("entry_id", entryID))
		return nil, apperrors.ErrAccessDenied
	}
	return entry, nil
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrAuthFailure),
		errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrValidation):
		return portssvc.OutcomeRejected
	default:
		return portssvc.OutcomeError
	}
}
