package task

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Statuses is the closed set a task status may take, in board order.
var Statuses = []string{StatusToDo, StatusInProgress, StatusCompleted}

type Task struct {
	ID              uint           `gorm:"column:task_id;primaryKey"`
	EmployeeID      uint           `gorm:"not null;index"`
	TaskDescription string         `gorm:"type:text;not null"`
	DueDate         datatypes.Date `gorm:"index"`
	Status          string         `gorm:"size:32;not null;default:'To Do';index;check:chk_tasks_status,status IN ('To Do','In Progress','Completed')"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TaskRow is a task joined with its owner's name.
type TaskRow struct {
	TaskID          uint
	EmployeeID      uint
	EmployeeName    string
	TaskDescription string
	DueDate         datatypes.Date
	Status          string
}

func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}
