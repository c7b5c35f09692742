package navigation

import (
	"strings"

	navigationerrors "go-hris-console/internal/navigation/errors"
	"go-hris-console/internal/session"
)

// Build returns the sidebar for user with the entry matching currentPath
// marked active. A nil user gets an empty panel.
func Build(user *session.User, currentPath string) (Panel, error) {
	if user == nil {
		return Panel{Items: []Item{}}, nil
	}

	menu, ok := menus[user.Role]
	if !ok {
		return Panel{}, navigationerrors.ErrNoMenuForRole
	}

	current := normalizePath(currentPath)
	items := make([]Item, len(menu))
	for i, item := range menu {
		item.Active = item.Path == current
		items[i] = item
	}

	actions := make([]ProfileAction, len(profileActions))
	copy(actions, profileActions)

	return Panel{
		User:           user,
		Items:          items,
		ProfileActions: actions,
	}, nil
}

// "/admin/dashboard/" and "/admin/dashboard?tab=1" both match
// "/admin/dashboard".
func normalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	return p
}
