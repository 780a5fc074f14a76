package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/daily_journal_app/internal/apperrors"
	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_journal_app/internal/core/ports/repositories"
)

// EntryRepository keeps journal entries in process memory.
type EntryRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.JournalEntry
	byOwner map[string][]string
	users   portsrepo.UserReader
}

var _ portsrepo.EntryRepositoryFacade = (*EntryRepository)(nil)

// NewEntryRepository creates an entry repository. When users is non-nil, SaveEntry
// rejects owners that do not exist, like the foreign key in Postgres.
func NewEntryRepository(users portsrepo.UserReader) *EntryRepository {
	return &EntryRepository{
		byID:    make(map[string]domain.JournalEntry),
		byOwner: make(map[string][]string),
		users:   users,
	}
}

func (r *EntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	if entry.Title == "" || entry.Content == "" {
		return fmt.Errorf("%w: title and content are required", apperrors.ErrValidation)
	}
	if entry.OwnerID == "" {
		return fmt.Errorf("%w: entry owner is required", apperrors.ErrValidation)
	}
	if r.users != nil {
		if _, err := r.users.FindUserByID(ctx, entry.OwnerID); err != nil {
			return fmt.Errorf("%w: entry owner does not exist", apperrors.ErrValidation)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[entry.EntryID]; exists {
		return fmt.Errorf("%w: entry %s", apperrors.ErrDuplicate, entry.EntryID)
	}
	r.byID[entry.EntryID] = entry
	r.byOwner[entry.OwnerID] = append(r.byOwner[entry.OwnerID], entry.EntryID)
	return nil
}

func (r *EntryRepository) FindEntryByID(_ context.Context, entryID string) (*domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byID[entryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &entry, nil
}

func (r *EntryRepository) ListEntriesByOwner(_ context.Context, ownerID string, limit int) ([]domain.JournalEntry, error) {
	r.mu.RLock()
	ids := r.byOwner[ownerID]
	entries := make([]domain.JournalEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, r.byID[id])
	}
	r.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].DatePosted.Equal(entries[j].DatePosted) {
			return entries[i].DatePosted.After(entries[j].DatePosted)
		}
		return entries[i].EntryID > entries[j].EntryID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
