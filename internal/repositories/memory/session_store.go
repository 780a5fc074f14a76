package memory

import (
	"context"

	"github.com/SscSPs/daily_journal_app/internal/apperrors"
	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_journal_app/internal/core/ports/repositories"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// SessionStore keeps session bindings in a sharded concurrent map.
// Expired bindings are dropped lazily on lookup.
type SessionStore struct {
	sessions cmap.ConcurrentMap[string, domain.Session]
}

var _ portsrepo.SessionStore = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: cmap.New[domain.Session]()}
}

func (s *SessionStore) Save(_ context.Context, session domain.Session) error {
	s.sessions.Set(session.SessionID, session)
	return nil
}

func (s *SessionStore) Find(_ context.Context, sessionID string) (*domain.Session, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if session.IsExpired() {
		s.sessions.Remove(sessionID)
		return nil, apperrors.ErrNotFound
	}
	return &session, nil
}

func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.sessions.Remove(sessionID)
	return nil
}
