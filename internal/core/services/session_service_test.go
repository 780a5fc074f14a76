package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	portssvc "github.com/SscSPs/daily_journal_app/internal/core/ports/services"
	"github.com/SscSPs/daily_journal_app/internal/core/services"
	"github.com/SscSPs/daily_journal_app/internal/platform/config"
	"github.com/SscSPs/daily_journal_app/internal/repositories/memory"
	"github.com/SscSPs/daily_journal_app/internal/utils"
	"github.com/stretchr/testify/suite"
)

func testConfig() *config.Config {
	return &config.Config{
		SessionSecret:      "test-secret-key-that-is-long-enough",
		SessionIssuer:      "daily-journal-test",
		SessionTTL:         time.Hour,
		SessionCookieName:  "journal_session",
		BcryptCost:         4,
		RecentEntriesLimit: 3,
		MaxUploadBytes:     1 << 20,
		LoginRateLimit:     "1000-M",
	}
}

type SessionServiceTestSuite struct {
	suite.Suite
	cfg     *config.Config
	store   *memory.SessionStore
	service portssvc.SessionSvcFacade
	ctx     context.Context
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.cfg = testConfig()
	s.store = memory.NewSessionStore()
	s.service = services.NewSessionService(s.cfg, s.store)
	s.ctx = context.Background()
}

func (s *SessionServiceTestSuite) TestCreateAndResolve() {
	token, session, err := s.service.CreateSession(s.ctx, "user-1")
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.Equal("user-1", session.UserID)
	s.WithinDuration(time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)

	userID, ok := s.service.ResolveSession(s.ctx, token)
	s.True(ok)
	s.Equal("user-1", userID)
}

func (s *SessionServiceTestSuite) TestResolve_InvalidTokensAreAnonymous() {
	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, ok := s.service.ResolveSession(s.ctx, token)
		s.False(ok, token)
	}
}

func (s *SessionServiceTestSuite) TestResolve_SignedButUnknownSession() {
	token, err := utils.GenerateSessionJWT("never-stored", "user-1", s.cfg.SessionSecret, time.Now().Add(time.Hour), s.cfg.SessionIssuer)
	s.Require().NoError(err)

	_, ok := s.service.ResolveSession(s.ctx, token)
	s.False(ok)
}

func (s *SessionServiceTestSuite) TestResolve_SubjectMustMatchStoredUser() {
	s.Require().NoError(s.store.Save(s.ctx, domain.Session{SessionID: "sid", UserID: "user-1", ExpiresAt: time.Now().Add(time.Hour)}))
	token, err := utils.GenerateSessionJWT("sid", "user-2", s.cfg.SessionSecret, time.Now().Add(time.Hour), s.cfg.SessionIssuer)
	s.Require().NoError(err)

	_, ok := s.service.ResolveSession(s.ctx, token)
	s.False(ok)
}

func (s *SessionServiceTestSuite) TestDestroy_IdempotentAndRevokes() {
	token, _, err := s.service.CreateSession(s.ctx, "user-1")
	s.Require().NoError(err)

	s.NoError(s.service.DestroySession(s.ctx, token))
	s.NoError(s.service.DestroySession(s.ctx, token))
	s.NoError(s.service.DestroySession(s.ctx, ""))
	s.NoError(s.service.DestroySession(s.ctx, "garbage"))

	_, ok := s.service.ResolveSession(s.ctx, token)
	s.False(ok)
}

func (s *SessionServiceTestSuite) TestCreate_RequiresUser() {
	_, _, err := s.service.CreateSession(s.ctx, "")
	s.Error(err)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
