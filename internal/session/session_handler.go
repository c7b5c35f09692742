package session

import (
	"net/http"

	sessionerrors "go-hris-console/internal/session/errors"
	"go-hris-console/internal/shared/apperror"
	"go-hris-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	terminator Terminator
	logger     *zap.Logger
}

func NewHandler(terminator Terminator, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("session.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.handler")
	}
	return &Handler{terminator: terminator, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("session request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Me(c *gin.Context) {
	s, ok := FromContext(c)
	if !ok {
		h.writeError(c, sessionerrors.ErrTokenNotFound)
		return
	}
	response.Success(c, http.StatusOK, s.User, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	s, ok := FromContext(c)
	if !ok {
		h.writeError(c, sessionerrors.ErrTokenNotFound)
		return
	}

	if err := h.terminator.Terminate(c.Request.Context(), s); err != nil {
		h.writeError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, nil)
}
