package rating

import (
	"time"

	"go-hrpms/internal/task"
)

type GiveRatingRequest struct {
	EmployeeID         uint   `json:"employee_id" binding:"required"`
	ReportingManagerID uint   `json:"reporting_manager_id" binding:"required"`
	Rating             int    `json:"rating" binding:"required"`
	Feedback           string `json:"feedback" binding:"omitempty,max=4000"`
}

type RatingResponse struct {
	ID                   uint      `json:"rating_id"`
	EmployeeID           uint      `json:"employee_id,omitempty"`
	EmployeeName         string    `json:"employee_name,omitempty"`
	ReportingManagerID   uint      `json:"reporting_manager_id,omitempty"`
	ReportingManagerName string    `json:"reporting_manager_name,omitempty"`
	Rating               int       `json:"rating"`
	Feedback             string    `json:"feedback"`
	RatingDate           time.Time `json:"rating_date"`
}

// EmployeeRatingResponse is one entry of an employee's own rating history.
type EmployeeRatingResponse struct {
	Rating     int       `json:"rating"`
	Feedback   string    `json:"feedback"`
	RatingDate time.Time `json:"rating_date"`
}

// SummaryResponse backs the rewards and recognition view.
type SummaryResponse struct {
	EmployeeID     uint                     `json:"employee_id"`
	EmployeeName   string                   `json:"employee_name"`
	Tasks          []task.TaskResponse      `json:"tasks"`
	CompletedTasks int                      `json:"completed_tasks"`
	Ratings        []EmployeeRatingResponse `json:"ratings"`
	AverageRating  *float64                 `json:"average_rating"`
}
