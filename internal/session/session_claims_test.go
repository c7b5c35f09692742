package session_test

import (
	"testing"
	"time"

	"go-hris-console/internal/session"
	sessionerrors "go-hris-console/internal/session/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "console-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func TestParser_Parse(t *testing.T) {
	future := time.Now().Add(time.Hour)

	t.Run("verified admin token", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"role":     "admin",
			"name":     "Rina Admin",
			"username": "rina",
			"exp":      future.Unix(),
		})

		s, err := session.NewParser(testSecret).Parse(token)

		assert.NoError(t, err)
		assert.Equal(t, session.RoleAdmin, s.User.Role)
		assert.Equal(t, "Rina Admin", s.User.Name)
		assert.Equal(t, "rina", s.User.Username)
		assert.Equal(t, session.KeyFor(token), s.Key)
		assert.Equal(t, future.Unix(), s.ExpiresAt.Unix())
	})

	t.Run("claim fallbacks", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"role":      "HR",
			"full_name": "Siti Rahma",
			"email":     "siti@hris.test",
		})

		s, err := session.NewParser(testSecret).Parse(token)

		assert.NoError(t, err)
		assert.Equal(t, "Siti Rahma", s.User.Name)
		assert.Equal(t, "siti@hris.test", s.User.Username)
		assert.True(t, s.ExpiresAt.IsZero())
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, "other", jwt.MapClaims{"role": "ADMIN"})

		_, err := session.NewParser(testSecret).Parse(token)

		assert.ErrorIs(t, err, sessionerrors.ErrInvalidToken)
	})

	t.Run("expired verified token", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{"role": "ADMIN", "exp": time.Now().Add(-time.Hour).Unix()})

		_, err := session.NewParser(testSecret).Parse(token)

		assert.ErrorIs(t, err, sessionerrors.ErrTokenExpired)
	})

	t.Run("unverified mode still rejects expired tokens", func(t *testing.T) {
		token := signToken(t, "whatever", jwt.MapClaims{"role": "ADMIN", "exp": time.Now().Add(-time.Minute).Unix()})

		_, err := session.NewParser("").Parse(token)

		assert.ErrorIs(t, err, sessionerrors.ErrTokenExpired)
	})

	t.Run("unverified mode reads claims", func(t *testing.T) {
		token := signToken(t, "backend-only-secret", jwt.MapClaims{"role": "EMPLOYEE", "username": "budi"})

		s, err := session.NewParser("").Parse(token)

		assert.NoError(t, err)
		assert.Equal(t, session.RoleEmployee, s.User.Role)
	})

	t.Run("unknown role", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{"role": "SUPERUSER"})

		_, err := session.NewParser(testSecret).Parse(token)

		assert.ErrorIs(t, err, sessionerrors.ErrUnknownRole)
	})

	t.Run("empty and garbage tokens", func(t *testing.T) {
		_, err := session.NewParser("").Parse("")
		assert.ErrorIs(t, err, sessionerrors.ErrTokenNotFound)

		_, err = session.NewParser("").Parse("not-a-jwt")
		assert.ErrorIs(t, err, sessionerrors.ErrInvalidToken)
	})
}

func TestParseRole(t *testing.T) {
	for in, want := range map[string]session.Role{
		"EMPLOYEE": session.RoleEmployee,
		"hr":       session.RoleHR,
		" Admin ":  session.RoleAdmin,
	} {
		got, err := session.ParseRole(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := session.ParseRole("")
	assert.ErrorIs(t, err, sessionerrors.ErrUnknownRole)
}
