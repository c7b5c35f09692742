package navigation

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
	menus  *Menus
	logger *zap.Logger
}

func NewHandler(menus *Menus, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("navigation.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("navigation.handler")
	}
	return &Handler{menus: menus, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("navigation request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetPanel(c *gin.Context) {
	var user *session.User
	if s, ok := session.FromContext(c); ok {
		user = s.User
	}

	panel, err := Build(user, c.Query("path"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, panel, nil)
}

type menuStateResponse struct {
	Open bool `json:"open"`
}

type clickRequest struct {
	Target string `json:"target"`
	Inside bool   `json:"inside"`
}

type profileActionResponse struct {
	Action   Action `json:"action"`
	Redirect string `json:"redirect"`
}

func (h *Handler) ToggleProfileMenu(c *gin.Context) {
	s, ok := session.FromContext(c)
	if !ok {
		h.writeError(c, sessionerrors.ErrTokenNotFound)
		return
	}

	open, err := h.menus.Toggle(c.Request.Context(), s)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, menuStateResponse{Open: open}, nil)
}

// Click reports a page click; a click outside the profile menu closes it.
func (h *Handler) Click(c *gin.Context) {
	s, ok := session.FromContext(c)
	if !ok {
		h.writeError(c, sessionerrors.ErrTokenNotFound)
		return
	}

	var req clickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http click validation failed", zap.Error(err))
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	open, err := h.menus.Click(c.Request.Context(), s, ClickEvent{Target: req.Target, Inside: req.Inside})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, menuStateResponse{Open: open}, nil)
}

func (h *Handler) ProfileAction(c *gin.Context) {
	s, ok := session.FromContext(c)
	if !ok {
		h.writeError(c, sessionerrors.ErrTokenNotFound)
		return
	}
	action := Action(c.Param("action"))

	redirect, err := h.menus.Select(c.Request.Context(), s, action)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if action == ActionLogout {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie("access_token", "", -1, "/", "", false, true)
	}
	response.Success(c, http.StatusOK, profileActionResponse{Action: action, Redirect: redirect}, nil)
}
