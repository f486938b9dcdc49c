package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-hrpms/internal/shared/contextutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

const maxBackoffSteps = 10

type OutboxEvent struct {
	ID            string     `gorm:"type:uuid;primaryKey"`
	RequestID     string     `gorm:"size:64"`
	AggregateType string     `gorm:"size:64;not null"`
	AggregateID   string     `gorm:"size:64;not null"`
	EventType     string     `gorm:"size:64;not null"`
	Topic         string     `gorm:"size:128;not null"`
	Payload       []byte     `gorm:"not null"`
	Status        string     `gorm:"size:16;not null;index"`
	RetryCount    int        `gorm:"not null;default:0"`
	ErrorMessage  *string    `gorm:"size:500"`
	NextRetryAt   *time.Time `gorm:"index"`
	ProcessedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (OutboxEvent) TableName() string {
	return "outbox_events"
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *gorm.DB) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, event OutboxEvent, reason string) error
}

type outboxRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewOutboxRepository(db *gorm.DB) OutboxRepository {
	return &outboxRepository{db: db, now: time.Now}
}

func (r *outboxRepository) WithTx(tx *gorm.DB) OutboxRepository {
	return &outboxRepository{db: tx, now: r.now}
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&event).Error
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	events := make([]OutboxEvent, 0, limit)
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{OutboxStatusPending, OutboxStatusFailed}).
		Where("next_retry_at IS NULL OR next_retry_at <= ?", r.now().UTC()).
		Order("created_at ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	now := r.now().UTC()
	return r.db.WithContext(ctx).
		Model(&OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        OutboxStatusSent,
			"processed_at":  now,
			"error_message": nil,
		}).Error
}

// MarkFailed schedules the next attempt with a linear backoff of 15s per
// previous attempt, capped at ten steps.
func (r *outboxRepository) MarkFailed(ctx context.Context, event OutboxEvent, reason string) error {
	if len(reason) > 500 {
		reason = reason[:500]
	}
	steps := event.RetryCount + 1
	if steps > maxBackoffSteps {
		steps = maxBackoffSteps
	}
	next := r.now().UTC().Add(time.Duration(steps) * 15 * time.Second)

	return r.db.WithContext(ctx).
		Model(&OutboxEvent{}).
		Where("id = ?", event.ID).
		Updates(map[string]any{
			"status":        OutboxStatusFailed,
			"retry_count":   gorm.Expr("retry_count + 1"),
			"error_message": reason,
			"next_retry_at": next,
		}).Error
}

// NewEvent builds a pending outbox row for payload, carrying the request id
// found in ctx.
func NewEvent(ctx context.Context, aggregateType, aggregateID, eventType, topic string, payload any) (OutboxEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return OutboxEvent{}, fmt.Errorf("marshal %s event: %w", eventType, err)
	}

	return OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       body,
		Status:        OutboxStatusPending,
	}, nil
}

func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox id is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
