package middleware

import (
	"strings"

	"go-hris-console/internal/session"
	sessionerrors "go-hris-console/internal/session/errors"
	"go-hris-console/internal/shared/apperror"
	"go-hris-console/internal/shared/contextutil"
	"go-hris-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BearerToken reads the token from the Authorization header, falling back
// to the access_token cookie.
func BearerToken(c *gin.Context) string {
	tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found {
		tokenString = ""
	}
	tokenString = strings.TrimSpace(tokenString)

	if tokenString == "" {
		if cookie, err := c.Cookie("access_token"); err == nil {
			tokenString = cookie
		}
	}
	return tokenString
}

// AuthMiddleware rejects requests without a usable session before any
// handler can reach the HR backend.
func AuthMiddleware(parser *session.Parser, revoked session.RevocationStore) gin.HandlerFunc {
	log := zap.L().Named("middleware.auth")

	return func(c *gin.Context) {
		tokenString := BearerToken(c)
		if tokenString == "" {
			abortWith(c, sessionerrors.ErrTokenNotFound)
			return
		}

		s, err := parser.Parse(tokenString)
		if err != nil {
			abortWith(c, err)
			return
		}

		isRevoked, err := revoked.IsRevoked(c.Request.Context(), s.Key)
		if err != nil {
			// the HR backend still verifies the token, so a cache outage
			// degrades to backend-only checks
			log.Warn("revocation lookup failed", zap.Error(err))
		}
		if isRevoked {
			abortWith(c, sessionerrors.ErrSessionRevoked)
			return
		}

		session.Attach(c, s)
		ctx := contextutil.WithUsername(c.Request.Context(), s.User.Username)
		ctx = contextutil.WithLogger(ctx, contextutil.GetLogger(ctx, zap.L()).With(
			zap.String("username", s.User.Username),
			zap.String("role", string(s.User.Role)),
		))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortWith(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
	c.Abort()
}
