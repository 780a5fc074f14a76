package repositories

import (
	"context"

	"github.com/SscSPs/daily_journal_app/internal/core/domain"
)

// EntryReader defines read operations for journal entries.
type EntryReader interface {
	// FindEntryByID retrieves an entry regardless of owner.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntriesByOwner returns the owner's entries, newest first.
	// A limit <= 0 returns all of them.
	ListEntriesByOwner(ctx context.Context, ownerID string, limit int) ([]domain.JournalEntry, error)
}

// EntryWriter defines write operations for journal entries.
type EntryWriter interface {
	// SaveEntry persists a new entry.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
