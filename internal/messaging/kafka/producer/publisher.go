package producer

import (
	"context"

	"go-hrpms/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafkago.Writer the relay uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// publishEvent keys messages by aggregate id so every event of one employee,
// task or rating lands on the same partition in commit order.
func publishEvent(ctx context.Context, writer MessageWriter, event kafka.OutboxEvent) error {
	msg := kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
			{Key: "outbox_id", Value: []byte(event.ID)},
		},
	}
	if event.RequestID != "" {
		msg.Headers = append(msg.Headers, kafkago.Header{Key: "request_id", Value: []byte(event.RequestID)})
	}

	return writer.WriteMessages(ctx, msg)
}
