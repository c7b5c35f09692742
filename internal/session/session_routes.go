package session

import "github.com/gin-gonic/gin"

// RegisterRoutes expects r to already run the authentication middleware.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	s := r.Group("/session")
	{
		s.GET("/me", handler.Me)
		s.POST("/logout", handler.Logout)
	}
}
