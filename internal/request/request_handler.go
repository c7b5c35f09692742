package request

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
	l := zap.L().Named("request.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("request management call failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) currentSession(c *gin.Context) (*session.Session, bool) {
	s, ok := session.FromContext(c)
	if !ok {
		h.writeServiceError(c, sessionerrors.ErrTokenNotFound)
		return nil, false
	}
	return s, true
}

func (h *Handler) writeList(c *gin.Context, result ListResult) {
	start, end, meta, paged := response.PageBounds(c, len(result.Requests))
	if !paged {
		response.Success(c, http.StatusOK, result, nil)
		return
	}
	result.Requests = result.Requests[start:end]
	response.Success(c, http.StatusOK, result, &meta)
}

func (h *Handler) List(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	result, err := h.service.List(c.Request.Context(), s)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeList(c, result)
}

func (h *Handler) SetDraft(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	var req FilterSet
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http set draft filters validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	state, err := h.service.SetDraft(c.Request.Context(), s, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, state, nil)
}

// ApplyFilters commits the draft and returns the re-filtered table.
func (h *Handler) ApplyFilters(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	if _, err := h.service.ApplyFilters(c.Request.Context(), s); err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.List(c)
}

func (h *Handler) ClearFilters(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	if _, err := h.service.ClearFilters(c.Request.Context(), s); err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.List(c)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}
	id := c.Param("id")
	h.logger.Debug("http update request status", zap.String("request_id", id))

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update request status validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.UpdateStatus(c.Request.Context(), s, id, req.Status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeList(c, result)
}
