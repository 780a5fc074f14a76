package dto

import (
	"time"

	"github.com/SscSPs/daily_journal_app/internal/core/domain"
)

// CreateEntryRequest holds the form fields of a new journal entry.
// The optional image travels separately as a multipart file.
type CreateEntryRequest struct {
	Title    string `form:"title" json:"title" validate:"required,max=100"`
	Content  string `form:"content" json:"content" validate:"required"`
	Location string `form:"location" json:"location" validate:"max=100"`
	Mood     string `form:"mood" json:"mood" validate:"max=50"`
}

// EntryResponse is the JSON shape of a journal entry.
type EntryResponse struct {
	EntryID    string    `json:"entryID"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	DatePosted time.Time `json:"datePosted"`
	Location   *string   `json:"location,omitempty"`
	Mood       *string   `json:"mood,omitempty"`
	Image      *string   `json:"image,omitempty"`
}

// CreateEntryResponse is returned after an entry is stored.
type CreateEntryResponse struct {
	Entry    EntryResponse `json:"entry"`
	Message  string        `json:"message"`
	Redirect string        `json:"redirect"`
}

// ListEntriesResponse wraps the caller's entries, most recent first.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// HomeResponse is the landing view. Entries is only set for an authenticated caller.
type HomeResponse struct {
	Authenticated bool            `json:"authenticated"`
	Message       string          `json:"message"`
	Entries       []EntryResponse `json:"entries,omitempty"`
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	return EntryResponse{
		EntryID:    e.EntryID,
		Title:      e.Title,
		Content:    e.Content,
		DatePosted: e.DatePosted,
		Location:   e.Location,
		Mood:       e.Mood,
		Image:      e.Image,
	}
}

// ToEntryResponses converts a slice of domain.JournalEntry to []EntryResponse.
func ToEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}
