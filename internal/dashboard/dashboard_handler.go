package dashboard

import (
	"net/http"

	"go-hris-console/internal/session"
	sessionerrors "go-hris-console/internal/session/errors"
	"go-hris-console/internal/shared/apperror"
	"go-hris-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("dashboard request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func sessionToken(c *gin.Context) (string, bool) {
	s, ok := session.FromContext(c)
	if !ok || s.Token == "" {
		return "", false
	}
	return s.Token, true
}

func (h *Handler) GetOverview(c *gin.Context) {
	token, ok := sessionToken(c)
	if !ok {
		h.writeServiceError(c, sessionerrors.ErrTokenNotFound)
		return
	}

	overview, err := h.service.Overview(c.Request.Context(), token)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, overview, nil)
}

func (h *Handler) Refresh(c *gin.Context) {
	token, ok := sessionToken(c)
	if !ok {
		h.writeServiceError(c, sessionerrors.ErrTokenNotFound)
		return
	}

	h.logger.Debug("http refresh dashboard", zap.String("username", c.GetString("username")))
	overview, err := h.service.Refresh(c.Request.Context(), token)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, overview, nil)
}
