package session

import (
	"context"
	"time"

	"go-hris-console/internal/audit"

	"go.uber.org/zap"
)

// defaultRevocationTTL covers tokens without an exp claim.
const defaultRevocationTTL = 24 * time.Hour

// Terminator ends a console session. Navigation's logout action calls it.
//
//go:generate mockgen -source=session_service.go -destination=mock/session_service_mock.go -package=mock
type Terminator interface {
	Terminate(ctx context.Context, s *Session) error
}

type terminator struct {
	store  RevocationStore
	audit  audit.Logger
	now    func() time.Time
	logger *zap.Logger
}

func NewTerminator(store RevocationStore, auditLogger audit.Logger, logger ...*zap.Logger) Terminator {
	l := zap.L().Named("session.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.service")
	}
	return &terminator{store: store, audit: auditLogger, now: time.Now, logger: l}
}

func (t *terminator) Terminate(ctx context.Context, s *Session) error {
	ttl := defaultRevocationTTL
	if !s.ExpiresAt.IsZero() {
		ttl = s.ExpiresAt.Sub(t.now())
		if ttl < time.Minute {
			ttl = time.Minute
		}
	}

	if err := t.store.Revoke(ctx, s.Key, ttl); err != nil {
		t.logger.Error("revoke session failed", zap.String("session_key", s.Key), zap.Error(err))
		return err
	}

	username := ""
	if s.User != nil {
		username = s.User.Username
	}
	t.audit.Log(ctx, audit.Entry{
		Action:  audit.ActionSessionLogout,
		Message: "console session terminated",
		Actor:   username,
		Meta:    map[string]any{"session_key": s.Key},
	})
	t.logger.Info("session terminated", zap.String("username", username), zap.Duration("ttl", ttl))
	return nil
}
