package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/daily_journal_app/internal/apperrors"
	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_journal_app/internal/core/ports/repositories"
	"github.com/SscSPs/daily_journal_app/internal/models"
	"github.com/SscSPs/daily_journal_app/internal/utils/mapping"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type PgxEntryRepository struct {
	BaseRepository
}

func newPgxEntryRepository(db DBTX) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const entriesTable = "journal_entries"

var entryColumns = []string{
	"entry_id", "owner_id", "title", "content", "date_posted", "location", "mood", "image",
}

// SaveEntry inserts a new entry. Title and content are checked again here so no
// caller can bypass the service validation.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	if entry.Title == "" || entry.Content == "" {
		return fmt.Errorf("%w: title and content are required", apperrors.ErrValidation)
	}
	if entry.OwnerID == "" {
		return fmt.Errorf("%w: entry owner is required", apperrors.ErrValidation)
	}

	m := mapping.ToModelEntry(entry)
	sql, args, err := psql.Insert(entriesTable).
		Columns(entryColumns...).
		Values(m.EntryID, m.OwnerID, m.Title, m.Content, m.DatePosted, m.Location, m.Mood, m.Image).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert entry query: %w", err)
	}

	if _, err := r.exec(ctx, sql, args...); err != nil {
		switch code, _ := pgErrorCode(err); code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: entry owner does not exist", apperrors.ErrValidation)
		case pgUniqueViolation:
			return fmt.Errorf("%w: entry %s", apperrors.ErrDuplicate, entry.EntryID)
		}
		return fmt.Errorf("failed to save entry: %w", err)
	}
	return nil
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	sql, args, err := psql.Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"entry_id": entryID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find entry query: %w", err)
	}

	modelEntry, err := scanEntry(r.queryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateLookupErr(err, "entry by ID", entryID)
	}
	domainEntry := mapping.ToDomainEntry(*modelEntry)
	return &domainEntry, nil
}

// ListEntriesByOwner orders by date_posted then entry_id, both descending, so
// entries sharing a timestamp keep a stable order.
func (r *PgxEntryRepository) ListEntriesByOwner(ctx context.Context, ownerID string, limit int) ([]domain.JournalEntry, error) {
	builder := psql.Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("date_posted DESC", "entry_id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list entries query: %w", err)
	}

	rows, err := r.query(ctx, sql, args...)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgInvalidTextRepr {
			return []domain.JournalEntry{}, nil
		}
		return nil, fmt.Errorf("failed to query entries for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	modelEntries := []models.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		modelEntries = append(modelEntries, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}

	return mapping.ToDomainEntrySlice(modelEntries), nil
}

func scanEntry(row pgx.Row) (*models.JournalEntry, error) {
	var e models.JournalEntry
	err := row.Scan(
		&e.EntryID,
		&e.OwnerID,
		&e.Title,
		&e.Content,
		&e.DatePosted,
		&e.Location,
		&e.Mood,
		&e.Image,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
