package pgsql_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/SscSPs/daily_journal_app/internal/apperrors"
	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_journal_app/internal/core/ports/repositories"
	"github.com/SscSPs/daily_journal_app/internal/repositories/database/pgsql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

var entryColumns = []string{"entry_id", "owner_id", "title", "content", "date_posted", "location", "mood", "image"}

type EntryRepositoryTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    portsrepo.EntryRepositoryFacade
	ctx     context.Context
	ownerID string
}

func (s *EntryRepositoryTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	s.Require().NoError(err)
	s.mock = mock
	s.repo = pgsql.NewRepositoryProvider(mock).EntryRepo
	s.ctx = context.Background()
	s.ownerID = uuid.NewString()
}

func (s *EntryRepositoryTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
	s.mock.Close()
}

func (s *EntryRepositoryTestSuite) TestSaveEntry() {
	e := domain.JournalEntry{
		EntryID:    uuid.NewString(),
		OwnerID:    s.ownerID,
		Title:      "My Day",
		Content:    "Went hiking",
		DatePosted: time.Now().UTC(),
		Location:   lo.ToPtr("Park"),
	}
	s.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO journal_entries (entry_id,owner_id,title,content,date_posted,location,mood,image) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)")).
		WithArgs(e.EntryID, e.OwnerID, e.Title, e.Content, e.DatePosted, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	s.NoError(s.repo.SaveEntry(s.ctx, e))
}

func (s *EntryRepositoryTestSuite) TestSaveEntry_MissingTitleNeverHitsDB() {
	err := s.repo.SaveEntry(s.ctx, domain.JournalEntry{EntryID: uuid.NewString(), OwnerID: s.ownerID, Content: "x"})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *EntryRepositoryTestSuite) TestSaveEntry_UnknownOwner() {
	e := domain.JournalEntry{EntryID: uuid.NewString(), OwnerID: s.ownerID, Title: "t", Content: "c", DatePosted: time.Now().UTC()}
	s.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO journal_entries")).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "journal_entries_owner_id_fkey"})

	s.ErrorIs(s.repo.SaveEntry(s.ctx, e), apperrors.ErrValidation)
}

func (s *EntryRepositoryTestSuite) TestFindEntryByID() {
	id := uuid.NewString()
	posted := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
	rows := pgxmock.NewRows(entryColumns).
		AddRow(id, s.ownerID, "My Day", "Went hiking", posted, "Park", "happy", "u_1.jpg")
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT entry_id, owner_id, title, content, date_posted, location, mood, image FROM journal_entries WHERE entry_id = $1")).
		WithArgs(id).
		WillReturnRows(rows)

	got, err := s.repo.FindEntryByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(s.ownerID, got.OwnerID)
	s.Equal("Park", *got.Location)
	s.Equal("happy", *got.Mood)
	s.Equal("u_1.jpg", *got.Image)
	s.True(posted.Equal(got.DatePosted))
}

func (s *EntryRepositoryTestSuite) TestFindEntryByID_NotFound() {
	id := uuid.NewString()
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM journal_entries")).WithArgs(id).WillReturnError(pgx.ErrNoRows)

	_, err := s.repo.FindEntryByID(s.ctx, id)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *EntryRepositoryTestSuite) TestListEntriesByOwner_WithLimit() {
	newest := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows(entryColumns).
		AddRow(uuid.NewString(), s.ownerID, "b", "c", newest, nil, nil, nil).
		AddRow(uuid.NewString(), s.ownerID, "a", "c", newest.Add(-time.Hour), nil, nil, nil)
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM journal_entries WHERE owner_id = $1 ORDER BY date_posted DESC, entry_id DESC LIMIT 3")).
		WithArgs(s.ownerID).
		WillReturnRows(rows)

	entries, err := s.repo.ListEntriesByOwner(s.ctx, s.ownerID, 3)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("b", entries[0].Title)
	s.Nil(entries[0].Location)
}

func (s *EntryRepositoryTestSuite) TestListEntriesByOwner_NoLimit() {
	s.mock.ExpectQuery(`ORDER BY date_posted DESC, entry_id DESC$`).
		WithArgs(s.ownerID).
		WillReturnRows(pgxmock.NewRows(entryColumns))

	entries, err := s.repo.ListEntriesByOwner(s.ctx, s.ownerID, 0)
	s.Require().NoError(err)
	s.Empty(entries)
}

func TestEntryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EntryRepositoryTestSuite))
}
