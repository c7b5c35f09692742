package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hris-console/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestInFlightGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const lockKey = "console:idemp:/requests/:id/status::key-1"

	t.Run("first write takes and releases the lock", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectDel(lockKey).SetVal(1)

		handled := false
		r := gin.New()
		r.PUT("/requests/:id/status", middleware.InFlightGuard(rdb, 30*time.Second), func(c *gin.Context) {
			handled = true
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPut, "/requests/42/status", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.True(t, handled)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate while in flight", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		r := gin.New()
		r.PUT("/requests/:id/status", middleware.InFlightGuard(rdb, 30*time.Second), func(c *gin.Context) {
			t.Fatal("handler must not run")
		})

		req := httptest.NewRequest(http.MethodPut, "/requests/42/status", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("no key passes through", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		r := gin.New()
		r.PUT("/requests/:id/status", middleware.InFlightGuard(rdb, time.Second), func(c *gin.Context) {
			c.Status(http.StatusAccepted)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/requests/42/status", nil))

		assert.Equal(t, http.StatusAccepted, w.Code)
	})
}
