package services

import (
	"context"

	"github.com/SscSPs/daily_journal_app/internal/core/domain"
)

// EntryReaderSvc defines read operations for journal entries. No ownership filtering happens here.
type EntryReaderSvc interface {
	// GetEntryByID returns the entry or apperrors.ErrNotFound.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntriesByOwner returns entries newest first; limit <= 0 means all.
	ListEntriesByOwner(ctx context.Context, ownerID string, limit int) ([]domain.JournalEntry, error)
}

// EntryWriterSvc defines write operations for journal entries.
type EntryWriterSvc interface {
	// CreateEntry validates and stores a new entry stamped with the current UTC time.
	CreateEntry(ctx context.Context, ownerID string, input domain.NewEntry) (*domain.JournalEntry, error)
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
