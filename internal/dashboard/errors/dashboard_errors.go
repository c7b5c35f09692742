package dashboarderrors

import (
	"net/http"

	"go-hris-console/internal/shared/apperror"
)

var ErrAggregationFailed = apperror.New(
	apperror.CodeUpstreamError,
	"Failed to load dashboard data",
	http.StatusBadGateway,
)
