package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-hris-console/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Backoff bounds for fetch and store retries. Vars so tests can shorten them.
var (
	retryBackoff = time.Second
	maxBackoff   = 30 * time.Second
)

// RequestStatusSink stores one consumed status event. A failed store is
// retried until it succeeds or ctx ends; the message is never committed
// before that.
type RequestStatusSink func(ctx context.Context, event events.RequestStatusUpdatedEvent) error

// ConsumeRequestStatus runs until ctx is canceled.
func ConsumeRequestStatus(
	ctx context.Context,
	reader MessageReader,
	sink RequestStatusSink,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.request_status")
	log.Info("request status consumer started")

	fetchBackoff := retryBackoff
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("request status consumer stopped")
				return
			}
			log.Error("fetch request status message failed", zap.Error(err), zap.Duration("backoff", fetchBackoff))
			if !wait(ctx, fetchBackoff) {
				log.Info("request status consumer stopped")
				return
			}
			fetchBackoff = nextBackoff(fetchBackoff)
			continue
		}
		fetchBackoff = retryBackoff

		var event events.RequestStatusUpdatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode request status event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}
		if event.EventType != events.RequestStatusUpdatedEventType {
			log.Debug("skipping unrelated event", zap.String("event_type", event.EventType))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if !storeWithRetry(ctx, sink, event, log) {
			log.Info("request status consumer stopped", zap.String("pending_event_id", event.EventID))
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit request status message failed", zap.Error(err))
			continue
		}

		log.Info("request status event stored",
			zap.String("event_id", event.EventID),
			zap.String("request_id", event.RequestID),
			zap.String("status", event.Status),
		)
	}
}

// storeWithRetry returns false when ctx ended before the event was stored.
func storeWithRetry(ctx context.Context, sink RequestStatusSink, event events.RequestStatusUpdatedEvent, log *zap.Logger) bool {
	backoff := retryBackoff
	for attempt := 1; ; attempt++ {
		err := sink(ctx, event)
		if err == nil {
			return true
		}
		log.Error("store request status event failed",
			zap.String("event_id", event.EventID),
			zap.String("request_id", event.RequestID),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err),
		)
		if !wait(ctx, backoff) {
			return false
		}
		backoff = nextBackoff(backoff)
	}
}

func nextBackoff(d time.Duration) time.Duration {
	d *= 2
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

func wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
