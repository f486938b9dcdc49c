package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-hrpms/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Fetcher is the part of *kafkago.Reader the consumer loop needs.
type Fetcher interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// InsightInvalidator drops the cached insights snapshot.
type InsightInvalidator interface {
	Invalidate(ctx context.Context) error
}

type envelope struct {
	EventType string `json:"event_type"`
	RequestID string `json:"request_id"`
}

var errUnknownEvent = errors.New("unknown event type")

// ConsumeHREvents invalidates the insights snapshot for every HR event
// until ctx is cancelled. A message is committed only once it is handled or
// known to be unusable, so invalidation failures are redelivered.
func ConsumeHREvents(
	ctx context.Context,
	reader Fetcher,
	insights InsightInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.hr_events")
	log.Info("hr events consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("hr events consumer stopped")
				return
			}
			log.Error("fetch hr event failed", zap.Error(err))
			continue
		}

		if err := HandleMessage(ctx, msg, insights); err != nil {
			if errors.Is(err, errUnknownEvent) || isDecodeError(err) {
				log.Warn("skipping undecodable hr event",
					zap.String("topic", msg.Topic),
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("handle hr event failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit hr event failed", zap.Error(err))
		}
	}
}

// HandleMessage decodes a single message and applies it.
func HandleMessage(ctx context.Context, msg kafkago.Message, insights InsightInvalidator) error {
	var env envelope
	if err := json.Unmarshal(msg.Value, &env); err != nil {
		return &decodeError{err: err}
	}

	switch env.EventType {
	case events.EmployeeCreated, events.EmployeeArchived,
		events.TaskStatusChanged, events.RatingGiven:
		return insights.Invalidate(ctx)
	default:
		return errUnknownEvent
	}
}

type decodeError struct{ err error }

func (e *decodeError) Error() string { return "decode hr event: " + e.err.Error() }
func (e *decodeError) Unwrap() error { return e.err }

func isDecodeError(err error) bool {
	var de *decodeError
	return errors.As(err, &de)
}
