package session

import "github.com/gin-gonic/gin"

const ginSessionKey = "console_session"

// Attach stores s on the gin context for downstream handlers.
func Attach(c *gin.Context, s *Session) {
	c.Set(ginSessionKey, s)
	if s.User != nil {
		c.Set("role", string(s.User.Role))
		c.Set("username", s.User.Username)
	}
}

// FromContext returns the session set by the authentication middleware.
func FromContext(c *gin.Context) (*Session, bool) {
	v, ok := c.Get(ginSessionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Session)
	return s, ok && s != nil
}
