package models

import (
	"database/sql"
	"time"
)

// JournalEntry is the persisted row of the journal_entries table.
type JournalEntry struct {
	EntryID    string         `db:"entry_id"`
	OwnerID    string         `db:"owner_id"` // FK users.user_id
	Title      string         `db:"title"`
	Content    string         `db:"content"`
	DatePosted time.Time      `db:"date_posted"`
	Location   sql.NullString `db:"location"`
	Mood       sql.NullString `db:"mood"`
	Image      sql.NullString `db:"image"`
}
