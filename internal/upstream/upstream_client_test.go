package upstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hris-console/internal/shared/apperror"
	"go-hris-console/internal/shared/contextutil"
	"go-hris-console/internal/upstream"
	upstreamerrors "go-hris-console/internal/upstream/errors"

	"github.com/stretchr/testify/assert"
)

func TestClient_Fetch(t *testing.T) {
	t.Run("sends bearer token to the resource path", func(t *testing.T) {
		var gotPath, gotAuth, gotRID string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotRID = r.Header.Get("X-Request-ID")
			_, _ = w.Write([]byte(`[{"id":1}]`))
		}))
		defer srv.Close()

		c := upstream.NewClient(srv.URL+"/", time.Second)
		ctx := contextutil.WithRequestID(context.Background(), "rid-7")

		raw, err := c.Fetch(ctx, "tok-123", upstream.ResourceEmployees)

		assert.NoError(t, err)
		assert.JSONEq(t, `[{"id":1}]`, string(raw))
		assert.Equal(t, "/api/admin/employees", gotPath)
		assert.Equal(t, "Bearer tok-123", gotAuth)
		assert.Equal(t, "rid-7", gotRID)
	})

	t.Run("missing token makes no call", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer srv.Close()

		_, err := upstream.NewClient(srv.URL, time.Second).Fetch(context.Background(), "", upstream.ResourceLeaves)

		assert.ErrorIs(t, err, upstreamerrors.ErrMissingToken)
		assert.Equal(t, 0, calls)
	})

	t.Run("non 2xx keeps backend message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"ok":false,"error":{"code":"FORBIDDEN","message":"Admins only"}}`))
		}))
		defer srv.Close()

		_, err := upstream.NewClient(srv.URL, time.Second).Fetch(context.Background(), "tok", upstream.ResourcePayroll)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Admins only", appErr.Message)
		assert.Equal(t, http.StatusForbidden, appErr.HTTPStatus)
		assert.Equal(t, apperror.CodeUpstreamError, appErr.Code)
	})

	t.Run("server error without body uses generic message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := upstream.NewClient(srv.URL, time.Second).Fetch(context.Background(), "tok", upstream.ResourceMeetings)

		assert.Equal(t, http.StatusBadGateway, apperror.ToHTTP(err).Status)
		assert.Equal(t, upstreamerrors.ErrRequestFailed.Message, apperror.ToHTTP(err).Message)
	})

	t.Run("unreachable backend", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := upstream.NewClient(srv.URL, time.Second).Fetch(context.Background(), "tok", upstream.ResourceDepartments)

		assert.ErrorIs(t, err, upstreamerrors.ErrUnreachable)
	})
}

func TestClient_UpdateRequestStatus(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		_, _ = w.Write([]byte(`{"request_id":42,"status":"RESOLVED"}`))
	}))
	defer srv.Close()

	err := upstream.NewClient(srv.URL, time.Second).UpdateRequestStatus(context.Background(), "tok", "42", "RESOLVED")

	assert.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/requests/42/status", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, map[string]string{"status": "RESOLVED"}, gotBody)
}
