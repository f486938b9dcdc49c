package events

import "time"

const EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"

const (
	EmployeeCreated  = "employee_created"
	EmployeeArchived = "employee_archived"
)

type EmployeeLifecycleEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   uint      `json:"employee_id"`
	DepartmentID uint      `json:"department_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}
