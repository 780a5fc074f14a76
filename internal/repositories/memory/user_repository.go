package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/SscSPs/daily_journal_app/internal/apperrors"
	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_journal_app/internal/core/ports/repositories"
)

// UserRepository keeps users in process memory. Uniqueness is checked and the
// user inserted under one lock, so concurrent registrations cannot both win.
type UserRepository struct {
	mu         sync.RWMutex
	byID       map[string]domain.User
	byUsername map[string]string
	byEmail    map[string]string
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:       make(map[string]domain.User),
		byUsername: make(map[string]string),
		byEmail:    make(map[string]string),
	}
}

func (r *UserRepository) SaveUser(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[user.Username]; taken {
		return fmt.Errorf("%w: users_username_key", apperrors.ErrDuplicate)
	}
	// emails compare case-insensitively, matching how they are normalised on registration
	email := strings.ToLower(user.Email)
	if _, taken := r.byEmail[email]; taken {
		return fmt.Errorf("%w: users_email_key", apperrors.ErrDuplicate)
	}
	if _, taken := r.byID[user.UserID]; taken {
		return fmt.Errorf("%w: users_pkey", apperrors.ErrDuplicate)
	}

	r.byID[user.UserID] = user
	r.byUsername[user.Username] = user.UserID
	r.byEmail[email] = user.UserID
	return nil
}

func (r *UserRepository) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepository) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	user := r.byID[id]
	return &user, nil
}
