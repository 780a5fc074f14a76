package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/daily_journal_app/internal/apperrors"
	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_journal_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/daily_journal_app/internal/core/ports/services"
	"github.com/SscSPs/daily_journal_app/internal/dto"
	"github.com/SscSPs/daily_journal_app/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo   portsrepo.UserRepositoryFacade
	validate   *validator.Validate
	bcryptCost int
	// dummyHash is checked when the username is unknown. It shares bcryptCost
	// so both login failures take the same time.
	dummyHash string
}

// NewUserService creates the credential store service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, bcryptCost int) portssvc.UserSvcFacade {
	dummyHash, err := utils.NewDummyPasswordHash(bcryptCost)
	if err != nil {
		slog.Error("Failed to prepare dummy password hash", slog.String("error", err.Error()))
	}
	return &userService{
		userRepo:   userRepo,
		validate:   validator.New(),
		bcryptCost: bcryptCost,
		dummyHash:  dummyHash,
	}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, describeValidation(err))
	}

	hash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogDebug(ctx, "Registration rejected, identity taken", slog.String("username", user.Username))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("username", user.Username))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			_ = utils.CheckPasswordHash(password, s.dummyHash)
			return nil, apperrors.ErrAuthFailure
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrAuthFailure
	}
	return user, nil
}

// describeValidation flattens validator errors into "field: tag" pairs.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		if fe.Field() == "" {
			parts = append(parts, rule)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), rule))
	}
	return strings.Join(parts, ", ")
}
