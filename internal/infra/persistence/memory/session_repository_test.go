package memory

import (
	"context"
	"testing"
	"time"

	"ashcosmetic/internal/domain/entity"
	"ashcosmetic/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_Lifecycle(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()
	now := time.Now()

	session := &entity.Session{Token: "tok", UserID: "u1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, session))

	found, err := repo.FindByToken(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", found.UserID)

	require.NoError(t, repo.DeleteByToken(ctx, "tok"))
	require.NoError(t, repo.DeleteByToken(ctx, "tok"))

	_, err = repo.FindByToken(ctx, "tok")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_ReturnsExpired(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()
	past := time.Now().Add(-2 * time.Hour)

	require.NoError(t, repo.Create(ctx, &entity.Session{Token: "old", UserID: "u1", CreatedAt: past, ExpiresAt: past.Add(time.Hour)}))

	found, err := repo.FindByToken(ctx, "old")
	require.NoError(t, err)
	assert.True(t, found.Expired(time.Now()))
}
