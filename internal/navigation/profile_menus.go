package navigation

import (
	"context"
	"sync"

	"go-hris-console/internal/session"
	"go-hris-console/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Menus owns every session's profile menu. An open menu stays mounted on
// the click bus until it closes; the open flag itself lives in the
// MenuStore so all instances agree on it.
type Menus struct {
	mu         sync.Mutex
	bus        *ClickBus
	store      MenuStore
	terminator session.Terminator
	mounted    map[string]*ProfileMenu
	logger     *zap.Logger
}

func NewMenus(bus *ClickBus, store MenuStore, terminator session.Terminator, logger ...*zap.Logger) *Menus {
	l := zap.L().Named("navigation.menus")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("navigation.menus")
	}
	return &Menus{
		bus:        bus,
		store:      store,
		terminator: terminator,
		mounted:    make(map[string]*ProfileMenu),
		logger:     l,
	}
}

// Toggle flips the session's menu and reports whether it is now open.
func (m *Menus) Toggle(ctx context.Context, s *session.Session) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	menu, err := m.load(ctx, s.Key)
	if err != nil {
		return false, err
	}
	menu.Toggle()
	if err := m.save(ctx, s.Key, menu); err != nil {
		return false, err
	}
	return menu.IsOpen(), nil
}

// Click publishes a page click for the session. An outside click closes
// its mounted menu.
func (m *Menus) Click(ctx context.Context, s *session.Session, ev ClickEvent) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	menu, err := m.load(ctx, s.Key)
	if err != nil {
		return false, err
	}
	ev.SessionKey = s.Key
	m.bus.Publish(ev)

	if err := m.save(ctx, s.Key, menu); err != nil {
		return false, err
	}
	return menu.IsOpen(), nil
}

// Select runs a profile action on the session's menu. The menu must be
// open and is closed afterwards.
func (m *Menus) Select(ctx context.Context, s *session.Session, action Action) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	menu, err := m.load(ctx, s.Key)
	if err != nil {
		return "", err
	}
	redirect, selectErr := menu.Select(ctx, action, s)
	if err := m.save(ctx, s.Key, menu); err != nil {
		contextutil.GetLogger(ctx, m.logger).Warn("save profile menu state failed", zap.Error(err))
	}
	return redirect, selectErr
}

// Mounted reports how many menus currently listen for clicks.
func (m *Menus) Mounted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.mounted)
}

// load returns the session's menu in its stored state, mounted when open.
// Caller holds m.mu.
func (m *Menus) load(ctx context.Context, key string) (*ProfileMenu, error) {
	open, err := m.store.IsOpen(ctx, key)
	if err != nil {
		contextutil.GetLogger(ctx, m.logger).Error("load profile menu state failed", zap.Error(err))
		return nil, err
	}

	menu, ok := m.mounted[key]
	if !ok {
		menu = NewProfileMenu(m.terminator, key)
	}
	if menu.IsOpen() != open {
		menu.Toggle()
	}
	if open {
		menu.Mount(m.bus)
		m.mounted[key] = menu
	}
	return menu, nil
}

// save stores the menu's state and drops the subscription of a closed
// menu. Caller holds m.mu.
func (m *Menus) save(ctx context.Context, key string, menu *ProfileMenu) error {
	open := menu.IsOpen()
	if open {
		menu.Mount(m.bus)
		m.mounted[key] = menu
	} else {
		menu.Unmount()
		delete(m.mounted, key)
	}
	return m.store.SetOpen(ctx, key, open)
}
