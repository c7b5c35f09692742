package session

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	sessionerrors "go-hris-console/internal/session/errors"
)

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleHR       Role = "HR"
	RoleAdmin    Role = "ADMIN"
)

// ParseRole is case-insensitive. Unknown roles are rejected rather than
// mapped to a default.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleEmployee:
		return RoleEmployee, nil
	case RoleHR:
		return RoleHR, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", sessionerrors.ErrUnknownRole
	}
}

type User struct {
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Session is the authenticated caller of one console request.
type Session struct {
	Token     string
	Key       string
	User      *User
	ExpiresAt time.Time
}

// KeyFor derives the storage key of a token. Raw tokens never reach
// Redis or logs.
func KeyFor(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:16])
}
