package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionRepository stores each session as one Redis hash (field = list key).
// Every write pushes the expiry forward, so an idle session disappears after ttl.
type SessionRepository struct {
	rdb    redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewSessionRepository(rdb redis.UniversalClient, prefix string, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *SessionRepository) sessionKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", r.prefix, sessionID)
}

func (r *SessionRepository) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	value, err := r.rdb.HGet(ctx, r.sessionKey(sessionID), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *SessionRepository) Set(ctx context.Context, sessionID, key, value string) error {
	sk := r.sessionKey(sessionID)
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, sk, key, value)
		pipe.Expire(ctx, sk, r.ttl)
		return nil
	})
	return err
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, r.sessionKey(sessionID)).Err()
}
