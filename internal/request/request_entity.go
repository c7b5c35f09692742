package request

import (
	"strings"

	requesterrors "go-hris-console/internal/request/errors"
	"go-hris-console/internal/upstream"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
)

// ParseStatus accepts the three backend states in any case.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusResolved:
		return StatusResolved, nil
	default:
		return "", requesterrors.ErrInvalidStatus
	}
}

// InternalRequest is the console's read-only copy of a backend request.
type InternalRequest struct {
	RequestID     string `json:"request_id"`
	EmployeeName  string `json:"employee_name"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	HRHandlerName string `json:"hr_handler_name"`
	CreatedAt     string `json:"created_at,omitempty"`
}

func fromRecord(r upstream.Record) InternalRequest {
	return InternalRequest{
		RequestID:     r.Text("request_id", "id"),
		EmployeeName:  r.Text("employee_name"),
		Category:      r.Text("category"),
		Description:   r.Text("description"),
		Status:        r.Text("status"),
		HRHandlerName: r.Text("hr_handler_name"),
		CreatedAt:     r.Text("created_at"),
	}
}

func fromRecords(records []upstream.Record) []InternalRequest {
	out := make([]InternalRequest, 0, len(records))
	for _, r := range records {
		out = append(out, fromRecord(r))
	}
	return out
}
