package events

import "time"

const (
	RequestStatusTopic            = "hr.console.request.status.v1"
	RequestStatusUpdatedEventType = "request.status.updated"
)

// RequestStatusUpdatedEvent is emitted after the HR backend accepted a
// status change made from the console.
type RequestStatusUpdatedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	Status     string    `json:"status"`
	UpdatedBy  string    `json:"updated_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
