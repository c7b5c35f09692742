package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-hris-console/internal/audit"
	"go-hris-console/internal/config"
	"go-hris-console/internal/events"
	"go-hris-console/internal/messaging/kafka/consumer"
	"go-hris-console/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer copies request status events from every console replica
// into the audit table.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	if cfg.AuditDB == nil {
		return fmt.Errorf("DB_HOST is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(*cfg.AuditDB, 5)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	auditStore := audit.NewGormLogger(gormDB)
	if err := auditStore.Migrate(); err != nil {
		return err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.RequestStatusTopic,
		GroupID:        "hr-console-audit",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeRequestStatus(ctx, reader, requestStatusSink(auditStore), logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}

type auditRecorder interface {
	Record(ctx context.Context, entry audit.Entry) error
}

func requestStatusSink(store auditRecorder) consumer.RequestStatusSink {
	return func(ctx context.Context, event events.RequestStatusUpdatedEvent) error {
		return store.Record(ctx, audit.Entry{
			Action:  audit.ActionRequestStatusEvent,
			Message: "request status changed",
			Actor:   event.UpdatedBy,
			Meta: map[string]any{
				"event_id":    event.EventID,
				"request_id":  event.RequestID,
				"status":      event.Status,
				"occurred_at": event.OccurredAt,
			},
		})
	}
}
