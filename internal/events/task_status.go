package events

import "time"

const TaskStatusTopic = "hr.task.status.v1"

const TaskStatusChanged = "task_status_changed"

type TaskStatusChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	TaskID     uint      `json:"task_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
