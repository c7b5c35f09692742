package navigation

import (
	"context"
	"errors"
	"testing"

	navigationerrors "go-hris-console/internal/navigation/errors"
	"go-hris-console/internal/session"

	"github.com/stretchr/testify/assert"
)

type failingMenuStore struct{}

func (failingMenuStore) IsOpen(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func (failingMenuStore) SetOpen(context.Context, string, bool) error {
	return errors.New("redis down")
}

func TestMenus_OutsideClickOnlyClosesOwnSession(t *testing.T) {
	ctx := context.Background()
	bus := NewClickBus()
	menus := NewMenus(bus, NewMemoryMenuStore(), nil)
	ayu := &session.Session{Key: "ayu"}
	budi := &session.Session{Key: "budi"}

	open, err := menus.Toggle(ctx, ayu)
	assert.NoError(t, err)
	assert.True(t, open)
	_, _ = menus.Toggle(ctx, budi)
	assert.Equal(t, 2, bus.Subscribers())

	open, err = menus.Click(ctx, ayu, ClickEvent{Target: "main"})
	assert.NoError(t, err)
	assert.False(t, open)
	assert.Equal(t, 1, bus.Subscribers())

	_, err = menus.Select(ctx, ayu, ActionProfile)
	assert.ErrorIs(t, err, navigationerrors.ErrMenuClosed)

	redirect, err := menus.Select(ctx, budi, ActionProfile)
	assert.NoError(t, err)
	assert.Equal(t, ProfilePath, redirect)
	assert.Equal(t, 0, menus.Mounted())
}

func TestMenus_StateSurvivesAcrossInstances(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryMenuStore()
	s := &session.Session{Key: "sk"}

	_, err := NewMenus(NewClickBus(), store, nil).Toggle(ctx, s)
	assert.NoError(t, err)

	other := NewMenus(NewClickBus(), store, nil)
	open, err := other.Click(ctx, s, ClickEvent{Target: "profile-menu", Inside: true})
	assert.NoError(t, err)
	assert.True(t, open)
	assert.Equal(t, 1, other.Mounted())

	open, err = other.Click(ctx, s, ClickEvent{Target: "main"})
	assert.NoError(t, err)
	assert.False(t, open)

	stored, _ := store.IsOpen(ctx, "sk")
	assert.False(t, stored)
}

func TestMenus_StoreError(t *testing.T) {
	menus := NewMenus(NewClickBus(), failingMenuStore{}, nil)

	_, err := menus.Toggle(context.Background(), &session.Session{Key: "sk"})

	assert.Error(t, err)
	assert.Equal(t, 0, menus.Mounted())
}
