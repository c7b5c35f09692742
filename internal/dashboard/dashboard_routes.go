package dashboard

import (
	"go-hris-console/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("", rbac.Authorize(rbacService, rbac.ResourceDashboard, rbac.ActionRead), handler.GetOverview)
		dashboard.POST("/refresh", rbac.Authorize(rbacService, rbac.ResourceDashboard, rbac.ActionRefresh), handler.Refresh)
	}
}
