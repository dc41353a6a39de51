package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Hour)

	_, found, err := repo.Get(ctx, "s1", "savedCatIds")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Set(ctx, "s1", "savedCatIds", `["1"]`))
	require.NoError(t, repo.Set(ctx, "s1", "adoptedCatIds", `["2"]`))

	saved, found, _ := repo.Get(ctx, "s1", "savedCatIds")
	assert.True(t, found)
	assert.Equal(t, `["1"]`, saved)

	adopted, _, _ := repo.Get(ctx, "s1", "adoptedCatIds")
	assert.Equal(t, `["2"]`, adopted)

	_, found, _ = repo.Get(ctx, "s2", "savedCatIds")
	assert.False(t, found, "sessions are isolated")
	assert.Equal(t, 1, repo.Count())
}

func TestSessionRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Hour)

	require.NoError(t, repo.Set(ctx, "s1", "savedCatIds", `["1"]`))
	require.NoError(t, repo.Delete(ctx, "s1"))

	_, found, _ := repo.Get(ctx, "s1", "savedCatIds")
	assert.False(t, found)
}

func TestSessionRepositoryExpires(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(20 * time.Millisecond)

	require.NoError(t, repo.Set(ctx, "s1", "savedCatIds", `["1"]`))
	time.Sleep(50 * time.Millisecond)

	_, found, _ := repo.Get(ctx, "s1", "savedCatIds")
	assert.False(t, found)
}
