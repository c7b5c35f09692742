package sessionerrors

import (
	"net/http"

	"go-hris-console/internal/shared/apperror"
)

var (
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication token not found. Please log in again.",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid authentication token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Session has expired. Please log in again.",
		http.StatusUnauthorized,
	)
	ErrSessionRevoked = apperror.New(
		"SESSION_REVOKED",
		"Session has been logged out. Please log in again.",
		http.StatusUnauthorized,
	)
	ErrUnknownRole = apperror.New(
		apperror.CodeForbidden,
		"Your account role is not recognised by the console",
		http.StatusForbidden,
	)
)
