package requesterrors

import (
	"net/http"

	"go-hris-console/internal/shared/apperror"
)

var (
	ErrRequestIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Request ID is required",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of: PENDING, IN_PROGRESS, RESOLVED",
		http.StatusBadRequest,
	)
	ErrLoadFailed = apperror.New(
		apperror.CodeUpstreamError,
		"Failed to load requests",
		http.StatusBadGateway,
	)
	ErrUpdateFailed = apperror.New(
		apperror.CodeUpstreamError,
		"Failed to update request status",
		http.StatusBadGateway,
	)
)
