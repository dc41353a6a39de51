package memory

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps session lists in process memory.
// An entry expires after ttl without writes, which ends the session.
type SessionRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	// purge expired sessions every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Get(_ context.Context, sessionID, key string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	x, found := r.cache.Get(sessionID)
	if !found {
		return "", false, nil
	}
	value, ok := x.(map[string]string)[key]
	return value, ok, nil
}

func (r *SessionRepository) Set(_ context.Context, sessionID, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lists := map[string]string{}
	if x, found := r.cache.Get(sessionID); found {
		for k, v := range x.(map[string]string) {
			lists[k] = v
		}
	}
	lists[key] = value
	r.cache.Set(sessionID, lists, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, sessionID string) error {
	r.cache.Delete(sessionID)
	return nil
}

// Count reports live sessions.
func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
