package events

import "time"

const PerformanceRatingTopic = "hr.performance.rating.v1"

const RatingGiven = "rating_given"

type RatingGivenEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	RatingID   uint      `json:"rating_id"`
	EmployeeID uint      `json:"employee_id"`
	ManagerID  uint      `json:"manager_id"`
	Rating     int       `json:"rating"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Topics lists every topic the services publish to.
func Topics() []string {
	return []string{EmployeeLifecycleTopic, TaskStatusTopic, PerformanceRatingTopic}
}
