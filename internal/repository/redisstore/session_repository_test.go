package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *redis.Client {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("Skipping integration test: REDIS_URL not set")
	}
	opt, err := redis.ParseURL(url)
	require.NoError(t, err)

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Skipping integration test: redis unreachable: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRedisSessionRepository(t *testing.T) {
	rdb := newTestClient(t)
	ctx := context.Background()
	repo := NewSessionRepository(rdb, "badgerbuds-test:session", time.Minute)
	sid := uuid.NewString()
	t.Cleanup(func() { _ = repo.Delete(ctx, sid) })

	_, found, err := repo.Get(ctx, sid, "savedCatIds")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Set(ctx, sid, "savedCatIds", `["10"]`))
	value, found, err := repo.Get(ctx, sid, "savedCatIds")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["10"]`, value)

	ttl, err := rdb.TTL(ctx, repo.sessionKey(sid)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, repo.Delete(ctx, sid))
	_, found, err = repo.Get(ctx, sid, "savedCatIds")
	require.NoError(t, err)
	assert.False(t, found)
}
