package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-hris-console/internal/shared/contextutil"
	upstreamerrors "go-hris-console/internal/upstream/errors"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// maxBodyBytes caps how much of a backend response is read.
const maxBodyBytes = 8 << 20

//go:generate mockgen -source=upstream_client.go -destination=mock/upstream_client_mock.go -package=mock
type Client interface {
	// Fetch performs an authorized GET of resource and returns the raw body.
	Fetch(ctx context.Context, token string, resource Resource) (json.RawMessage, error)
	// UpdateRequestStatus performs PUT /api/requests/{id}/status. The
	// response body is discarded; callers re-fetch.
	UpdateRequestStatus(ctx context.Context, token, requestID, status string) error
}

type client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger ...*zap.Logger) Client {
	l := zap.L().Named("upstream.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("upstream.client")
	}
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: l,
	}
}

func (c *client) Fetch(ctx context.Context, token string, resource Resource) (json.RawMessage, error) {
	if token == "" {
		return nil, upstreamerrors.ErrMissingToken
	}
	if !resource.Valid() {
		return nil, fmt.Errorf("unknown resource %q", resource)
	}

	req, err := c.newRequest(ctx, http.MethodGet, resource.Path(), token, nil)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, req)
}

func (c *client) UpdateRequestStatus(ctx context.Context, token, requestID, status string) error {
	if token == "" {
		return upstreamerrors.ErrMissingToken
	}

	body, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return err
	}

	path := ResourceRequests.Path() + "/" + url.PathEscape(requestID) + "/status"
	req, err := c.newRequest(ctx, http.MethodPut, path, token, body)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, req)
	return err
}

func (c *client) newRequest(ctx context.Context, method, path, token string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}
	return req, nil
}

func (c *client) do(ctx context.Context, req *http.Request) (json.RawMessage, error) {
	log := contextutil.GetLogger(ctx, c.logger)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("upstream call failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
		return nil, upstreamerrors.ErrUnreachable.WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, upstreamerrors.ErrUnreachable.WithCause(err)
	}

	log.Debug("upstream call",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, body)
	}
	return body, nil
}

// statusError keeps the backend's own message when it sent one, so the
// console banner shows it instead of a generic text.
func statusError(status int, body []byte) error {
	appErr := upstreamerrors.ErrRequestFailed.WithCause(fmt.Errorf("upstream status %d", status))
	if status == http.StatusUnauthorized || status == http.StatusForbidden || status == http.StatusNotFound {
		appErr.HTTPStatus = status
	}
	if msg := extractMessage(body); msg != "" {
		appErr.Message = msg
	}
	return appErr
}

func extractMessage(body []byte) string {
	var payload struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}

	var text string
	if err := json.Unmarshal(payload.Error, &text); err == nil {
		return text
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload.Error, &nested); err == nil {
		return nested.Message
	}
	return ""
}
