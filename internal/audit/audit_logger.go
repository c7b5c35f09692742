package audit

import (
	"context"
	"encoding/json"
	"time"

	"go-hris-console/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ActionServerShutdown      = "SERVER_SHUTDOWN"
	ActionSessionLogout       = "SESSION_LOGOUT"
	ActionRequestStatusUpdate = "REQUEST_STATUS_UPDATE"
	ActionRequestStatusEvent  = "REQUEST_STATUS_EVENT"
)

// Logger records audit entries. Implementations must not fail the caller;
// write errors are logged and dropped.
type Logger interface {
	Log(ctx context.Context, entry Entry)
}

type StdoutLogger struct{}

func NewStdoutLogger() *StdoutLogger {
	return &StdoutLogger{}
}

func (l *StdoutLogger) Log(ctx context.Context, entry Entry) {
	md := contextutil.ExtractMetadata(ctx)
	zap.L().Named("audit").Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.String("actor", actorOf(entry, md)),
		zap.String("request_id", md.RequestID),
		zap.Any("meta", entry.Meta),
	)
}

// GormLogger writes entries to console_audit_logs and mirrors them to
// stdout.
type GormLogger struct {
	db     *gorm.DB
	stdout *StdoutLogger
	now    func() time.Time
	logger *zap.Logger
}

func NewGormLogger(db *gorm.DB) *GormLogger {
	return &GormLogger{
		db:     db,
		stdout: NewStdoutLogger(),
		now:    time.Now,
		logger: zap.L().Named("audit.gorm"),
	}
}

// Migrate creates the audit table when missing.
func (l *GormLogger) Migrate() error {
	return l.db.AutoMigrate(&AuditLog{})
}

func (l *GormLogger) Log(ctx context.Context, entry Entry) {
	l.stdout.Log(ctx, entry)

	if err := l.Record(ctx, entry); err != nil {
		l.logger.Error("persist audit entry failed",
			zap.String("action", entry.Action),
			zap.Error(err),
		)
	}
}

// Record persists entry and reports the write error to the caller.
func (l *GormLogger) Record(ctx context.Context, entry Entry) error {
	md := contextutil.ExtractMetadata(ctx)
	meta := "{}"
	if len(entry.Meta) > 0 {
		if b, err := json.Marshal(entry.Meta); err == nil {
			meta = string(b)
		}
	}

	row := AuditLog{
		ID:        uuid.New(),
		Action:    entry.Action,
		Message:   entry.Message,
		Actor:     actorOf(entry, md),
		RequestID: md.RequestID,
		Meta:      meta,
		CreatedAt: l.now().UTC(),
	}
	return l.db.WithContext(ctx).Create(&row).Error
}

func actorOf(entry Entry, md contextutil.Metadata) string {
	if entry.Actor != "" {
		return entry.Actor
	}
	return md.Username
}
