package mapping

import (
	"database/sql"

	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	"github.com/SscSPs/daily_journal_app/internal/models"
	"github.com/samber/lo"
)

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return lo.ToPtr(ns.String)
}

// ToModelEntry converts a domain JournalEntry to a model JournalEntry
func ToModelEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:    d.EntryID,
		OwnerID:    d.OwnerID,
		Title:      d.Title,
		Content:    d.Content,
		DatePosted: d.DatePosted,
		Location:   toNullString(d.Location),
		Mood:       toNullString(d.Mood),
		Image:      toNullString(d.Image),
	}
}

// ToDomainEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:    m.EntryID,
		OwnerID:    m.OwnerID,
		Title:      m.Title,
		Content:    m.Content,
		DatePosted: m.DatePosted.UTC(),
		Location:   fromNullString(m.Location),
		Mood:       fromNullString(m.Mood),
		Image:      fromNullString(m.Image),
	}
}

// ToDomainEntrySlice converts a slice of model entries to domain entries
func ToDomainEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	return lo.Map(ms, func(m models.JournalEntry, _ int) domain.JournalEntry {
		return ToDomainEntry(m)
	})
}
