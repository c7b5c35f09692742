package navigation

import (
	"context"
	"sync"

	navigationerrors "go-hris-console/internal/navigation/errors"
	"go-hris-console/internal/session"
)

// ProfileMenu is the small menu behind the profile affordance.
type ProfileMenu struct {
	mu         sync.Mutex
	open       bool
	release    func()
	sessionKey string
	terminator session.Terminator
}

// NewProfileMenu builds a closed menu. A non-empty sessionKey makes the
// menu ignore clicks from other sessions.
func NewProfileMenu(terminator session.Terminator, sessionKey string) *ProfileMenu {
	return &ProfileMenu{terminator: terminator, sessionKey: sessionKey}
}

// Mount subscribes to outside clicks. Mounting twice keeps one
// subscription.
func (m *ProfileMenu) Mount(bus *ClickBus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.release != nil {
		return
	}
	m.release = bus.Subscribe(func(ev ClickEvent) {
		if m.sessionKey != "" && ev.SessionKey != "" && ev.SessionKey != m.sessionKey {
			return
		}
		if !ev.Inside {
			m.Close()
		}
	})
}

// Unmount releases the outside-click subscription.
func (m *ProfileMenu) Unmount() {
	m.mu.Lock()
	release := m.release
	m.release = nil
	m.mu.Unlock()

	if release != nil {
		release()
	}
}

func (m *ProfileMenu) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = !m.open
	return m.open
}

func (m *ProfileMenu) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
}

func (m *ProfileMenu) IsMounted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.release != nil
}

func (m *ProfileMenu) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Select runs a menu action and returns where the caller should navigate.
// The menu is closed afterwards whatever the outcome.
func (m *ProfileMenu) Select(ctx context.Context, action Action, s *session.Session) (string, error) {
	if !m.IsOpen() {
		return "", navigationerrors.ErrMenuClosed
	}
	defer m.Close()

	switch action {
	case ActionProfile:
		return ProfilePath, nil
	case ActionLogout:
		if err := m.terminator.Terminate(ctx, s); err != nil {
			return "", err
		}
		return LoginPath, nil
	default:
		return "", navigationerrors.ErrUnknownAction
	}
}
