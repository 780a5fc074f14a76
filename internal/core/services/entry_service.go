package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/daily_journal_app/internal/apperrors"
	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_journal_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/daily_journal_app/internal/core/ports/services"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type entryService struct {
	BaseService
	entryRepo portsrepo.EntryRepositoryFacade
	validate  *validator.Validate
	now       func() time.Time
}

// EntryServiceOption configures an entry service.
type EntryServiceOption func(*entryService)

// WithEntryClock overrides the clock used to stamp DatePosted.
func WithEntryClock(now func() time.Time) EntryServiceOption {
	return func(s *entryService) {
		s.now = now
	}
}

// NewEntryService creates the entry store service.
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade, opts ...EntryServiceOption) portssvc.EntrySvcFacade {
	s := &entryService{
		entryRepo: entryRepo,
		validate:  validator.New(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *entryService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to fetch entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to get entry by ID in service: %w", err)
	}
	return entry, nil
}

func (s *entryService) ListEntriesByOwner(ctx context.Context, ownerID string, limit int) ([]domain.JournalEntry, error) {
	entries, err := s.entryRepo.ListEntriesByOwner(ctx, ownerID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list entries in service: %w", err)
	}
	return entries, nil
}

func (s *entryService) CreateEntry(ctx context.Context, ownerID string, input domain.NewEntry) (*domain.JournalEntry, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", apperrors.ErrValidation)
	}

	entry := domain.JournalEntry{
		OwnerID:  ownerID,
		Title:    strings.TrimSpace(input.Title),
		Content:  input.Content,
		Location: optionalText(input.Location),
		Mood:     optionalText(input.Mood),
		Image:    optionalText(input.Image),
	}

	if err := s.validateEntry(entry); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate entry id: %w", err)
	}
	entry.EntryID = id.String()
	entry.DatePosted = s.now().UTC()

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	s.LogInfo(ctx, "Entry created", slog.String("entry_id", entry.EntryID))
	return &entry, nil
}

func (s *entryService) validateEntry(entry domain.JournalEntry) error {
	checks := []struct {
		field string
		value string
		rule  string
	}{
		{"title", entry.Title, "required,max=100"},
		{"content", strings.TrimSpace(entry.Content), "required"},
		{"location", derefText(entry.Location), "max=100"},
		{"mood", derefText(entry.Mood), "max=50"},
	}
	for _, c := range checks {
		if err := s.validate.Var(c.value, c.rule); err != nil {
			return fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, c.field, describeValidation(err))
		}
	}
	return nil
}

// optionalText maps blank values to nil.
func optionalText(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func derefText(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
