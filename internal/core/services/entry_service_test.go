package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/daily_journal_app/internal/apperrors"
	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	portssvc "github.com/SscSPs/daily_journal_app/internal/core/ports/services"
	"github.com/SscSPs/daily_journal_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EntryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEntryRepository
	service  portssvc.EntrySvcFacade
	ctx      context.Context
	now      time.Time
}

func (s *EntryServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockEntryRepository)
	s.now = time.Date(2024, 6, 1, 14, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	s.service = services.NewEntryService(s.mockRepo, services.WithEntryClock(func() time.Time { return s.now }))
	s.ctx = context.Background()
}

func (s *EntryServiceTestSuite) TearDownTest() {
	s.mockRepo.AssertExpectations(s.T())
}

func (s *EntryServiceTestSuite) TestCreateEntry_StampsUTCAndKeepsFields() {
	s.mockRepo.On("SaveEntry", s.ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	entry, err := s.service.CreateEntry(s.ctx, "owner-1", domain.NewEntry{
		Title:    "My Day",
		Content:  "Went hiking",
		Location: lo.ToPtr("Park"),
		Mood:     lo.ToPtr("happy"),
		Image:    lo.ToPtr("owner-1_x.jpg"),
	})
	s.Require().NoError(err)

	id, err := uuid.Parse(entry.EntryID)
	s.Require().NoError(err)
	s.Equal(uuid.Version(7), id.Version())
	s.Equal("owner-1", entry.OwnerID)
	s.Equal(time.UTC, entry.DatePosted.Location())
	s.True(s.now.Equal(entry.DatePosted))
	s.Equal("Park", *entry.Location)
	s.Equal("happy", *entry.Mood)
	s.Equal("owner-1_x.jpg", *entry.Image)
}

func (s *EntryServiceTestSuite) TestCreateEntry_BlankOptionalsBecomeNil() {
	s.mockRepo.On("SaveEntry", s.ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.Location == nil && e.Mood == nil && e.Image == nil
	})).Return(nil).Once()

	_, err := s.service.CreateEntry(s.ctx, "owner-1", domain.NewEntry{
		Title:    "t",
		Content:  "c",
		Location: lo.ToPtr("   "),
		Mood:     lo.ToPtr(""),
	})
	s.NoError(err)
}

func (s *EntryServiceTestSuite) TestCreateEntry_Validation() {
	cases := map[string]domain.NewEntry{
		"missing title":   {Content: "c"},
		"blank title":     {Title: "   ", Content: "c"},
		"missing content": {Title: "t"},
		"long title":      {Title: strings.Repeat("x", 101), Content: "c"},
		"long mood":       {Title: "t", Content: "c", Mood: lo.ToPtr(strings.Repeat("m", 51))},
		"long location":   {Title: "t", Content: "c", Location: lo.ToPtr(strings.Repeat("l", 101))},
	}
	for name, input := range cases {
		_, err := s.service.CreateEntry(s.ctx, "owner-1", input)
		s.ErrorIs(err, apperrors.ErrValidation, name)
	}

	_, err := s.service.CreateEntry(s.ctx, "", domain.NewEntry{Title: "t", Content: "c"})
	s.ErrorIs(err, apperrors.ErrValidation)

	s.mockRepo.AssertNotCalled(s.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (s *EntryServiceTestSuite) TestCreateEntry_RepositoryFailure() {
	s.mockRepo.On("SaveEntry", s.ctx, mock.AnythingOfType("domain.JournalEntry")).Return(errors.New("db down")).Once()

	_, err := s.service.CreateEntry(s.ctx, "owner-1", domain.NewEntry{Title: "t", Content: "c"})
	s.Error(err)
}

func (s *EntryServiceTestSuite) TestGetEntryByID_NotFound() {
	s.mockRepo.On("FindEntryByID", s.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GetEntryByID(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *EntryServiceTestSuite) TestListEntriesByOwner_PassesLimit() {
	entries := []domain.JournalEntry{{EntryID: "e1"}, {EntryID: "e2"}}
	s.mockRepo.On("ListEntriesByOwner", s.ctx, "owner-1", 3).Return(entries, nil).Once()

	got, err := s.service.ListEntriesByOwner(s.ctx, "owner-1", 3)
	s.Require().NoError(err)
	s.Equal(entries, got)
}

func TestEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}
