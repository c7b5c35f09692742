package upstreamerrors

import (
	"net/http"

	"go-hris-console/internal/shared/apperror"
)

var (
	ErrMissingToken = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication token not found. Please log in again.",
		http.StatusUnauthorized,
	)
	ErrRequestFailed = apperror.New(
		apperror.CodeUpstreamError,
		"The HR service could not complete the request",
		http.StatusBadGateway,
	)
	ErrUnreachable = apperror.New(
		apperror.CodeServiceUnavailable,
		"The HR service is unreachable",
		http.StatusBadGateway,
	)
	ErrMalformedPayload = apperror.New(
		apperror.CodeUpstreamError,
		"The HR service returned an unexpected response",
		http.StatusBadGateway,
	)
)
