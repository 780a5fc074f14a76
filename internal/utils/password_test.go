package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_SaltedAndVerifiable(t *testing.T) {
	h1, err := HashPassword("correct horse", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("correct horse", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", h1)
	assert.NotEqual(t, h1, h2, "same password must hash differently")
	assert.True(t, CheckPasswordHash("correct horse", h1))
	assert.False(t, CheckPasswordHash("wrong horse", h1))
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("pw-12345", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestNewDummyPasswordHash_UsesRequestedCost(t *testing.T) {
	hash, err := NewDummyPasswordHash(bcrypt.MinCost + 1)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)
	assert.False(t, CheckPasswordHash("", hash))
}
