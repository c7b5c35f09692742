package navigation_test

import (
	"context"
	"errors"
	"testing"

	"go-hris-console/internal/navigation"
	navigationerrors "go-hris-console/internal/navigation/errors"
	"go-hris-console/internal/session"
	mock_session "go-hris-console/internal/session/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestProfileMenu_OutsideClick(t *testing.T) {
	bus := navigation.NewClickBus()
	menu := navigation.NewProfileMenu(nil, "")

	menu.Mount(bus)
	menu.Mount(bus)
	assert.Equal(t, 1, bus.Subscribers())

	assert.True(t, menu.Toggle())
	bus.Publish(navigation.ClickEvent{Target: "profile-menu", Inside: true})
	assert.True(t, menu.IsOpen())

	bus.Publish(navigation.ClickEvent{Target: "main"})
	assert.False(t, menu.IsOpen())

	menu.Unmount()
	menu.Unmount()
	assert.Equal(t, 0, bus.Subscribers())

	menu.Toggle()
	bus.Publish(navigation.ClickEvent{Target: "main"})
	assert.True(t, menu.IsOpen(), "released menu must not receive clicks")
}

func TestProfileMenu_IgnoresOtherSessions(t *testing.T) {
	bus := navigation.NewClickBus()
	menu := navigation.NewProfileMenu(nil, "mine")
	menu.Mount(bus)
	defer menu.Unmount()
	menu.Toggle()

	bus.Publish(navigation.ClickEvent{SessionKey: "theirs", Target: "main"})
	assert.True(t, menu.IsOpen())

	bus.Publish(navigation.ClickEvent{SessionKey: "mine", Target: "main"})
	assert.False(t, menu.IsOpen())
}

func TestProfileMenu_Select(t *testing.T) {
	ctx := context.Background()
	s := &session.Session{Key: "k", User: &session.User{Role: session.RoleHR}}

	t.Run("profile navigates and closes", func(t *testing.T) {
		menu := navigation.NewProfileMenu(nil, "")
		menu.Toggle()

		redirect, err := menu.Select(ctx, navigation.ActionProfile, s)

		assert.NoError(t, err)
		assert.Equal(t, navigation.ProfilePath, redirect)
		assert.False(t, menu.IsOpen())
	})

	t.Run("logout delegates to terminator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		term := mock_session.NewMockTerminator(ctrl)
		term.EXPECT().Terminate(gomock.Any(), s).Return(nil)

		menu := navigation.NewProfileMenu(term, "k")
		menu.Toggle()

		redirect, err := menu.Select(ctx, navigation.ActionLogout, s)

		assert.NoError(t, err)
		assert.Equal(t, navigation.LoginPath, redirect)
		assert.False(t, menu.IsOpen())
	})

	t.Run("logout failure still closes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		term := mock_session.NewMockTerminator(ctrl)
		term.EXPECT().Terminate(gomock.Any(), s).Return(errors.New("redis down"))

		menu := navigation.NewProfileMenu(term, "k")
		menu.Toggle()

		_, err := menu.Select(ctx, navigation.ActionLogout, s)

		assert.Error(t, err)
		assert.False(t, menu.IsOpen())
	})

	t.Run("closed menu", func(t *testing.T) {
		_, err := navigation.NewProfileMenu(nil, "").Select(ctx, navigation.ActionProfile, s)
		assert.ErrorIs(t, err, navigationerrors.ErrMenuClosed)
	})

	t.Run("unknown action", func(t *testing.T) {
		menu := navigation.NewProfileMenu(nil, "")
		menu.Toggle()
		_, err := menu.Select(ctx, "settings", s)
		assert.ErrorIs(t, err, navigationerrors.ErrUnknownAction)
	})
}
