package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore remembers logged-out sessions until their token expires.
//
//go:generate mockgen -source=session_store.go -destination=mock/session_store_mock.go -package=mock
type RevocationStore interface {
	Revoke(ctx context.Context, key string, ttl time.Duration) error
	IsRevoked(ctx context.Context, key string) (bool, error)
}

type redisRevocationStore struct {
	rdb *redis.Client
}

func NewRedisRevocationStore(rdb *redis.Client) RevocationStore {
	return &redisRevocationStore{rdb: rdb}
}

func revokedKey(key string) string {
	return "console:session:revoked:" + key
}

func (s *redisRevocationStore) Revoke(ctx context.Context, key string, ttl time.Duration) error {
	return s.rdb.Set(ctx, revokedKey(key), "1", ttl).Err()
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, key string) (bool, error) {
	err := s.rdb.Get(ctx, revokedKey(key)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// memoryRevocationStore serves single-instance deployments without Redis.
type memoryRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryRevocationStore() RevocationStore {
	return &memoryRevocationStore{revoked: make(map[string]time.Time), now: time.Now}
}

func (s *memoryRevocationStore) Revoke(_ context.Context, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[key] = s.now().Add(ttl)
	return nil
}

func (s *memoryRevocationStore) IsRevoked(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.revoked[key]
	if !ok {
		return false, nil
	}
	if !s.now().Before(until) {
		delete(s.revoked, key)
		return false, nil
	}
	return true, nil
}
