package navigation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// menuStateTTL drops the open flag of an abandoned session.
const menuStateTTL = 12 * time.Hour

// MenuStore keeps whether a session's profile menu is open. Only the open
// state is stored; closed is the absence of a key.
type MenuStore interface {
	IsOpen(ctx context.Context, sessionKey string) (bool, error)
	SetOpen(ctx context.Context, sessionKey string, open bool) error
}

type redisMenuStore struct {
	rdb *redis.Client
}

func NewRedisMenuStore(rdb *redis.Client) MenuStore {
	return &redisMenuStore{rdb: rdb}
}

func menuKey(sessionKey string) string {
	return "console:navigation:menu:" + sessionKey
}

func (s *redisMenuStore) IsOpen(ctx context.Context, sessionKey string) (bool, error) {
	err := s.rdb.Get(ctx, menuKey(sessionKey)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *redisMenuStore) SetOpen(ctx context.Context, sessionKey string, open bool) error {
	if !open {
		return s.rdb.Del(ctx, menuKey(sessionKey)).Err()
	}
	return s.rdb.Set(ctx, menuKey(sessionKey), "1", menuStateTTL).Err()
}

type memoryMenuStore struct {
	mu    sync.Mutex
	until map[string]time.Time
	now   func() time.Time
}

func NewMemoryMenuStore() MenuStore {
	return &memoryMenuStore{until: make(map[string]time.Time), now: time.Now}
}

func (s *memoryMenuStore) IsOpen(_ context.Context, sessionKey string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.until[sessionKey]
	if !ok {
		return false, nil
	}
	if !s.now().Before(until) {
		delete(s.until, sessionKey)
		return false, nil
	}
	return true, nil
}

func (s *memoryMenuStore) SetOpen(_ context.Context, sessionKey string, open bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !open {
		delete(s.until, sessionKey)
		return nil
	}
	s.until[sessionKey] = s.now().Add(menuStateTTL)
	return nil
}
