package rbac_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hris-console/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	allowed bool
	err     error
}

func (f fakeService) Enforce(rbac.EnforceRequest) (bool, error) {
	return f.allowed, f.err
}

func runAuthorize(svc rbac.Service, role string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.GET("/dashboard", func(c *gin.Context) {
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	}, rbac.Authorize(svc, rbac.ResourceDashboard, rbac.ActionRead), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	return w
}

func TestAuthorize(t *testing.T) {
	assert.Equal(t, http.StatusNoContent, runAuthorize(fakeService{allowed: true}, "ADMIN").Code)
	assert.Equal(t, http.StatusForbidden, runAuthorize(fakeService{allowed: false}, "HR").Code)
	assert.Equal(t, http.StatusUnauthorized, runAuthorize(fakeService{allowed: true}, "").Code)
	assert.Equal(t, http.StatusInternalServerError, runAuthorize(fakeService{err: errors.New("model")}, "ADMIN").Code)
}
