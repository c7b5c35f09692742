package navigationerrors

import (
	"net/http"

	"go-hris-console/internal/shared/apperror"
)

var (
	ErrNoMenuForRole = apperror.New(
		apperror.CodeForbidden,
		"No navigation is defined for this role",
		http.StatusForbidden,
	)
	ErrUnknownAction = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown profile action",
		http.StatusBadRequest,
	)
	ErrMenuClosed = apperror.New(
		apperror.CodeInvalidState,
		"Profile menu is not open",
		http.StatusConflict,
	)
)
