package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/daily_journal_app/internal/apperrors"
	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	"github.com/SscSPs/daily_journal_app/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_SaveFindDelete(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()
	session := domain.Session{SessionID: "s1", UserID: "u1", CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)}

	require.NoError(t, store.Save(ctx, session))

	got, err := store.Find(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	require.NoError(t, store.Delete(ctx, "s1"))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, err = store.Find(ctx, "s1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSessionStore_ExpiredIsNotFound(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()
	require.NoError(t, store.Save(ctx, domain.Session{SessionID: "old", UserID: "u1", ExpiresAt: time.Now().Add(-time.Minute)}))

	_, err := store.Find(ctx, "old")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
