package session

import (
	"errors"
	"fmt"
	"time"

	sessionerrors "go-hris-console/internal/session/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Parser turns a bearer token into a Session.
type Parser struct {
	secret []byte
	now    func() time.Time
}

// NewParser verifies HMAC signatures when secret is set. Without a secret
// the claims are read unverified; the HR backend still verifies the token
// on every call the console makes with it.
func NewParser(secret string) *Parser {
	var key []byte
	if secret != "" {
		key = []byte(secret)
	}
	return &Parser{secret: key, now: time.Now}
}

func (p *Parser) Parse(token string) (*Session, error) {
	if token == "" {
		return nil, sessionerrors.ErrTokenNotFound
	}

	claims := jwt.MapClaims{}
	if p.secret != nil {
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return p.secret, nil
		}, jwt.WithTimeFunc(p.now))
		if err != nil || !parsed.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return nil, sessionerrors.ErrTokenExpired
			}
			return nil, sessionerrors.ErrInvalidToken.WithCause(err)
		}
	} else {
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
			return nil, sessionerrors.ErrInvalidToken.WithCause(err)
		}
	}

	var expiresAt time.Time
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
		if p.secret == nil && !expiresAt.After(p.now()) {
			return nil, sessionerrors.ErrTokenExpired
		}
	}

	role, err := ParseRole(stringClaim(claims, "role"))
	if err != nil {
		return nil, err
	}

	return &Session{
		Token: token,
		Key:   KeyFor(token),
		User: &User{
			Role:     role,
			Name:     stringClaim(claims, "name", "full_name"),
			Username: stringClaim(claims, "username", "email", "sub"),
		},
		ExpiresAt: expiresAt,
	}, nil
}

func stringClaim(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v, ok := claims[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
