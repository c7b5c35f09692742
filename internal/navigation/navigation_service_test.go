package navigation_test

import (
	"testing"

	"go-hris-console/internal/navigation"
	navigationerrors "go-hris-console/internal/navigation/errors"
	"go-hris-console/internal/session"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	t.Run("nil user renders nothing", func(t *testing.T) {
		panel, err := navigation.Build(nil, "/admin/dashboard")

		assert.NoError(t, err)
		assert.Nil(t, panel.User)
		assert.Empty(t, panel.Items)
		assert.Empty(t, panel.ProfileActions)
	})

	t.Run("each role gets its own ordered menu", func(t *testing.T) {
		first := map[session.Role]string{
			session.RoleEmployee: "/employee/dashboard",
			session.RoleHR:       "/hr/dashboard",
			session.RoleAdmin:    "/admin/dashboard",
		}
		for role, path := range first {
			panel, err := navigation.Build(&session.User{Role: role}, "")
			assert.NoError(t, err)
			if assert.NotEmpty(t, panel.Items) {
				assert.Equal(t, path, panel.Items[0].Path)
			}
		}
	})

	t.Run("highlights exactly the current route", func(t *testing.T) {
		panel, err := navigation.Build(&session.User{Role: session.RoleAdmin}, "/admin/requests/")

		assert.NoError(t, err)
		active := 0
		for _, item := range panel.Items {
			if item.Active {
				active++
				assert.Equal(t, "/admin/requests", item.Path)
			}
		}
		assert.Equal(t, 1, active)
	})

	t.Run("route outside the menu highlights nothing", func(t *testing.T) {
		panel, _ := navigation.Build(&session.User{Role: session.RoleHR}, "/admin/dashboard?tab=stats")

		for _, item := range panel.Items {
			assert.False(t, item.Active)
		}
	})

	t.Run("profile actions", func(t *testing.T) {
		panel, _ := navigation.Build(&session.User{Role: session.RoleEmployee}, "/")

		assert.Equal(t, []navigation.ProfileAction{
			{Action: navigation.ActionProfile, Label: "Profile"},
			{Action: navigation.ActionLogout, Label: "Logout"},
		}, panel.ProfileActions)
	})

	t.Run("unknown role does not fall through", func(t *testing.T) {
		_, err := navigation.Build(&session.User{Role: "AUDITOR"}, "/")

		assert.ErrorIs(t, err, navigationerrors.ErrNoMenuForRole)
	})

	t.Run("building does not mutate the table", func(t *testing.T) {
		_, _ = navigation.Build(&session.User{Role: session.RoleAdmin}, "/admin/dashboard")
		panel, _ := navigation.Build(&session.User{Role: session.RoleAdmin}, "/admin/payroll")

		assert.False(t, panel.Items[0].Active)
	})
}
