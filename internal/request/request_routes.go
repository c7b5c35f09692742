package request

import (
	"time"

	"go-hris-console/internal/middleware"
	"go-hris-console/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const statusUpdateLockTTL = 30 * time.Second

// RegisterRoutes mounts the request table. rdb may be nil, in which case
// duplicate status writes are not guarded.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	read := rbac.Authorize(rbacService, rbac.ResourceRequest, rbac.ActionRead)
	update := rbac.Authorize(rbacService, rbac.ResourceRequest, rbac.ActionUpdate)

	requests := r.Group("/requests")
	{
		requests.GET("", read, handler.List)
		requests.PUT("/filters/draft", read, handler.SetDraft)
		requests.POST("/filters/apply", read, handler.ApplyFilters)
		requests.DELETE("/filters", read, handler.ClearFilters)

		statusChain := []gin.HandlerFunc{update}
		if rdb != nil {
			statusChain = append(statusChain, middleware.InFlightGuard(rdb, statusUpdateLockTTL))
		}
		statusChain = append(statusChain, handler.UpdateStatus)
		requests.PUT("/:id/status", statusChain...)
	}
}
