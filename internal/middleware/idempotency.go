package middleware

import (
	"fmt"
	"net/http"
	"time"

	"go-hris-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InFlightGuard rejects a second write carrying the same Idempotency-Key
// while the first one is still running. Nothing is replayed: once the first
// write finishes the key is released and the caller re-fetches.
func InFlightGuard(rdb *redis.Client, lockTTL time.Duration) gin.HandlerFunc {
	log := zap.L().Named("middleware.idempotency")

	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		lockKey := fmt.Sprintf("console:idemp:%s:%s:%s", c.FullPath(), c.GetString("username"), idempKey)
		ctx := c.Request.Context()

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", lockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "This change is already being processed, please wait.", nil)
			c.Abort()
			return
		}
		defer rdb.Del(ctx, lockKey)

		c.Next()
	}
}
