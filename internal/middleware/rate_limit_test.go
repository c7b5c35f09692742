package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hris-console/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		if u := c.Query("u"); u != "" {
			c.Set("username", u)
		}
	}, middleware.RateLimitByUser(0.001, 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	call := func(target string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("/x?u=rina"))
	assert.Equal(t, http.StatusTooManyRequests, call("/x?u=rina"))
	assert.Equal(t, http.StatusOK, call("/x?u=siti"))
	assert.Equal(t, http.StatusOK, call("/x"))
	assert.Equal(t, http.StatusOK, call("/x"))
}

func TestKeyedRateLimiter_ReusesLimiter(t *testing.T) {
	l := middleware.NewKeyedRateLimiter(1, 1)
	assert.Same(t, l.GetLimiter("a"), l.GetLimiter("a"))
	assert.NotSame(t, l.GetLimiter("a"), l.GetLimiter("b"))
}
