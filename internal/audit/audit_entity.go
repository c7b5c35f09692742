package audit

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one console action worth keeping: logouts, status changes,
// server lifecycle.
type Entry struct {
	Action  string
	Message string
	Actor   string
	Meta    map[string]any
}

// AuditLog is the persisted row of an Entry.
type AuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Action    string    `gorm:"size:64;not null;index"`
	Message   string    `gorm:"type:text"`
	Actor     string    `gorm:"size:128;index"`
	RequestID string    `gorm:"size:64"`
	Meta      string    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"not null"`
}

func (AuditLog) TableName() string {
	return "console_audit_logs"
}
