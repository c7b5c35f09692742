package navigation

import (
	"go-hris-console/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	nav := r.Group("/navigation")
	{
		nav.GET("", rbac.Authorize(rbacService, rbac.ResourceNavigation, rbac.ActionRead), handler.GetPanel)
		nav.POST("/click", rbac.Authorize(rbacService, rbac.ResourceNavigation, rbac.ActionRead), handler.Click)
		nav.POST("/profile/toggle", rbac.Authorize(rbacService, rbac.ResourceNavigation, rbac.ActionRead), handler.ToggleProfileMenu)
		nav.POST("/profile/:action", rbac.Authorize(rbacService, rbac.ResourceSession, rbac.ActionLogout), handler.ProfileAction)
	}
}
