package request

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// filterStateTTL keeps an idle session's filters for a working day.
const filterStateTTL = 12 * time.Hour

// StateStore keeps per-session console state: filter state and the
// transient flash message shown after a successful update.
//
//go:generate mockgen -source=request_store.go -destination=mock/request_store_mock.go -package=mock
type StateStore interface {
	LoadFilters(ctx context.Context, sessionKey string) (FilterState, error)
	SaveFilters(ctx context.Context, sessionKey string, state FilterState) error
	SetFlash(ctx context.Context, sessionKey, message string, ttl time.Duration) error
	Flash(ctx context.Context, sessionKey string) (string, error)
}

type redisStateStore struct {
	rdb *redis.Client
}

func NewRedisStateStore(rdb *redis.Client) StateStore {
	return &redisStateStore{rdb: rdb}
}

func filterKey(sessionKey string) string {
	return "console:request:filters:" + sessionKey
}

func flashKey(sessionKey string) string {
	return "console:request:flash:" + sessionKey
}

func (s *redisStateStore) LoadFilters(ctx context.Context, sessionKey string) (FilterState, error) {
	raw, err := s.rdb.Get(ctx, filterKey(sessionKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return FilterState{}, nil
	}
	if err != nil {
		return FilterState{}, err
	}

	var state FilterState
	if err := json.Unmarshal(raw, &state); err != nil {
		return FilterState{}, err
	}
	return state, nil
}

func (s *redisStateStore) SaveFilters(ctx context.Context, sessionKey string, state FilterState) error {
	if state == (FilterState{}) {
		return s.rdb.Del(ctx, filterKey(sessionKey)).Err()
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, filterKey(sessionKey), raw, filterStateTTL).Err()
}

func (s *redisStateStore) SetFlash(ctx context.Context, sessionKey, message string, ttl time.Duration) error {
	return s.rdb.Set(ctx, flashKey(sessionKey), message, ttl).Err()
}

func (s *redisStateStore) Flash(ctx context.Context, sessionKey string) (string, error) {
	msg, err := s.rdb.Get(ctx, flashKey(sessionKey)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return msg, err
}

type expiring[T any] struct {
	value T
	until time.Time
}

// memoryStateStore serves single-instance deployments without Redis.
type memoryStateStore struct {
	mu      sync.Mutex
	filters map[string]expiring[FilterState]
	flashes map[string]expiring[string]
	now     func() time.Time
}

func NewMemoryStateStore() StateStore {
	return &memoryStateStore{
		filters: make(map[string]expiring[FilterState]),
		flashes: make(map[string]expiring[string]),
		now:     time.Now,
	}
}

func (s *memoryStateStore) LoadFilters(_ context.Context, sessionKey string) (FilterState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.filters[sessionKey]
	if !ok {
		return FilterState{}, nil
	}
	if !s.now().Before(e.until) {
		delete(s.filters, sessionKey)
		return FilterState{}, nil
	}
	return e.value, nil
}

func (s *memoryStateStore) SaveFilters(_ context.Context, sessionKey string, state FilterState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state == (FilterState{}) {
		delete(s.filters, sessionKey)
		return nil
	}
	s.filters[sessionKey] = expiring[FilterState]{value: state, until: s.now().Add(filterStateTTL)}
	return nil
}

func (s *memoryStateStore) SetFlash(_ context.Context, sessionKey, message string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes[sessionKey] = expiring[string]{value: message, until: s.now().Add(ttl)}
	return nil
}

func (s *memoryStateStore) Flash(_ context.Context, sessionKey string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.flashes[sessionKey]
	if !ok {
		return "", nil
	}
	if !s.now().Before(e.until) {
		delete(s.flashes, sessionKey)
		return "", nil
	}
	return e.value, nil
}
