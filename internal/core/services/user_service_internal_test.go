package services

import (
	"context"
	"testing"

	"github.com/SscSPs/daily_journal_app/internal/apperrors"
	"github.com/SscSPs/daily_journal_app/internal/dto"
	"github.com/SscSPs/daily_journal_app/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_DummyHashMatchesUserHashCost(t *testing.T) {
	for _, cost := range []int{bcrypt.MinCost, bcrypt.MinCost + 1, 0} {
		svc := NewUserService(memory.NewUserRepository(), cost).(*userService)

		user, err := svc.RegisterUser(context.Background(), dto.RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "password-alice",
		})
		require.NoError(t, err)

		userCost, err := bcrypt.Cost([]byte(user.PasswordHash))
		require.NoError(t, err)
		dummyCost, err := bcrypt.Cost([]byte(svc.dummyHash))
		require.NoError(t, err)
		assert.Equal(t, userCost, dummyCost, "cost %d", cost)

		_, err = svc.VerifyCredentials(context.Background(), "nobody", "password-alice")
		assert.ErrorIs(t, err, apperrors.ErrAuthFailure)
	}
}
