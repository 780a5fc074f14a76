package domain

import "time"

// JournalEntry is a single dated journal record. OwnerID is fixed at creation.
type JournalEntry struct {
	EntryID    string    `json:"entryID"`
	OwnerID    string    `json:"ownerID"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	DatePosted time.Time `json:"datePosted"` // server clock, UTC
	Location   *string   `json:"location,omitempty"`
	Mood       *string   `json:"mood,omitempty"`
	Image      *string   `json:"image,omitempty"` // attachment reference
}

// IsOwnedBy reports whether userID is the entry's owner.
func (e *JournalEntry) IsOwnedBy(userID string) bool {
	return userID != "" && e.OwnerID == userID
}

// NewEntry holds the caller-supplied fields of an entry that is about to be created.
type NewEntry struct {
	Title    string
	Content  string
	Location *string
	Mood     *string
	Image    *string
}
