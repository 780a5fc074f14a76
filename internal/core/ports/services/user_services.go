package services

import (
	"context"

	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	"github.com/SscSPs/daily_journal_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a user with a bcrypt hash of the password.
	// Returns apperrors.ErrDuplicate when the username or email is taken.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// VerifyCredentials returns the user for a matching username/password pair,
	// or apperrors.ErrAuthFailure for an unknown user and a wrong password alike.
	VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
