package kafka

import (
	"context"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Message struct {
	Topic         string
	Key           string
	EventType     string
	AggregateType string
	Payload       []byte
}

//go:generate mockgen -source=publisher.go -destination=mock/publisher_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// MessageWriter is the part of *kafkago.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type publisher struct {
	writer MessageWriter
	logger *zap.Logger
}

func NewPublisher(writer MessageWriter, logger ...*zap.Logger) Publisher {
	l := zap.L().Named("kafka.publisher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.publisher")
	}
	return &publisher{writer: writer, logger: l}
}

func (p *publisher) Publish(ctx context.Context, msg Message) error {
	if msg.Topic == "" {
		return errors.New("kafka topic is required")
	}
	if len(msg.Payload) == 0 {
		return errors.New("kafka payload is required")
	}

	err := p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: msg.Topic,
		Key:   []byte(msg.Key),
		Value: msg.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(msg.EventType)},
			{Key: "aggregate_type", Value: []byte(msg.AggregateType)},
		},
	})
	if err != nil {
		p.logger.Error("publish event failed",
			zap.String("topic", msg.Topic),
			zap.String("event_type", msg.EventType),
			zap.Error(err),
		)
		return err
	}

	p.logger.Debug("event published",
		zap.String("topic", msg.Topic),
		zap.String("event_type", msg.EventType),
		zap.String("key", msg.Key),
	)
	return nil
}

// NoopPublisher drops every message. It stands in when no broker is
// configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Message) error { return nil }
