package session_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hris-console/internal/session"
	mock_session "go-hris-console/internal/session/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestSessionHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success clears cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		term := mock_session.NewMockTerminator(ctrl)
		s := &session.Session{Key: "k", User: &session.User{Role: session.RoleHR, Username: "siti"}}
		term.EXPECT().Terminate(gomock.Any(), s).Return(nil)

		h := session.NewHandler(term)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/session/logout", nil)
		session.Attach(c, s)

		h.Logout(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeEnvelope(t, w.Body.Bytes()).Ok)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "access_token=;")
	})

	t.Run("no session", func(t *testing.T) {
		h := session.NewHandler(mock_session.NewMockTerminator(gomock.NewController(t)))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/session/logout", nil)

		h.Logout(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})

	t.Run("terminator failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		term := mock_session.NewMockTerminator(ctrl)
		term.EXPECT().Terminate(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		h := session.NewHandler(term)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/session/logout", nil)
		session.Attach(c, &session.Session{Key: "k"})

		h.Logout(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestSessionHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := session.NewHandler(nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/session/me", nil)
	session.Attach(c, &session.Session{User: &session.User{Role: session.RoleAdmin, Name: "Rina", Username: "rina"}})

	h.Me(c)

	env := decodeEnvelope(t, w.Body.Bytes())
	var got session.User
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, session.User{Role: session.RoleAdmin, Name: "Rina", Username: "rina"}, got)
}
