package request

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisStateStore_Filters(t *testing.T) {
	ctx := context.Background()
	state := FilterState{Draft: FilterSet{Status: "PENDING"}, Applied: FilterSet{Status: "PENDING"}}
	raw, _ := json.Marshal(state)

	t.Run("save and load", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewRedisStateStore(rdb)

		mock.ExpectSet("console:request:filters:sk", raw, filterStateTTL).SetVal("OK")
		mock.ExpectGet("console:request:filters:sk").SetVal(string(raw))

		assert.NoError(t, store.SaveFilters(ctx, "sk", state))
		got, err := store.LoadFilters(ctx, "sk")

		assert.NoError(t, err)
		assert.Equal(t, state, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero state deletes the key", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewRedisStateStore(rdb)

		mock.ExpectDel("console:request:filters:sk").SetVal(1)

		assert.NoError(t, store.SaveFilters(ctx, "sk", FilterState{}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing key is the zero state", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewRedisStateStore(rdb)

		mock.ExpectGet("console:request:filters:sk").RedisNil()

		got, err := store.LoadFilters(ctx, "sk")
		assert.NoError(t, err)
		assert.Equal(t, FilterState{}, got)
	})

	t.Run("redis error", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := NewRedisStateStore(rdb)

		mock.ExpectGet("console:request:filters:sk").SetErr(errors.New("connection refused"))

		_, err := store.LoadFilters(ctx, "sk")
		assert.Error(t, err)
	})
}

func TestRedisStateStore_Flash(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	store := NewRedisStateStore(rdb)

	mock.ExpectSet("console:request:flash:sk", FlashStatusUpdated, 3*time.Second).SetVal("OK")
	mock.ExpectGet("console:request:flash:sk").SetVal(FlashStatusUpdated)
	mock.ExpectGet("console:request:flash:sk").RedisNil()

	assert.NoError(t, store.SetFlash(ctx, "sk", FlashStatusUpdated, 3*time.Second))

	msg, err := store.Flash(ctx, "sk")
	assert.NoError(t, err)
	assert.Equal(t, FlashStatusUpdated, msg)

	msg, err = store.Flash(ctx, "sk")
	assert.NoError(t, err)
	assert.Empty(t, msg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryStateStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store := NewMemoryStateStore().(*memoryStateStore)
	store.now = func() time.Time { return now }

	t.Run("flash expires after its ttl", func(t *testing.T) {
		assert.NoError(t, store.SetFlash(ctx, "sk", FlashStatusUpdated, 3*time.Second))

		msg, _ := store.Flash(ctx, "sk")
		assert.Equal(t, FlashStatusUpdated, msg)

		now = now.Add(3 * time.Second)
		msg, _ = store.Flash(ctx, "sk")
		assert.Empty(t, msg)
	})

	t.Run("filters are per session", func(t *testing.T) {
		state := FilterState{Applied: FilterSet{Category: "it"}}
		assert.NoError(t, store.SaveFilters(ctx, "a", state))

		got, _ := store.LoadFilters(ctx, "a")
		assert.Equal(t, state, got)
		got, _ = store.LoadFilters(ctx, "b")
		assert.Equal(t, FilterState{}, got)

		now = now.Add(filterStateTTL)
		got, _ = store.LoadFilters(ctx, "a")
		assert.Equal(t, FilterState{}, got)
	})
}
