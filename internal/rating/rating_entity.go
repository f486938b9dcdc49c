package rating

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// PerformanceRating is append-only; RatingDate is assigned by the database.
type PerformanceRating struct {
	ID                 uint      `gorm:"column:rating_id;primaryKey"`
	EmployeeID         uint      `gorm:"not null;index"`
	ReportingManagerID uint      `gorm:"not null;index"`
	Rating             int       `gorm:"type:smallint;not null;check:chk_ratings_range,rating BETWEEN 1 AND 5"`
	Feedback           string    `gorm:"type:text"`
	RatingDate         time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index"`
}

// RatingRow is a rating joined with the rated employee's and the
// manager's names.
type RatingRow struct {
	RatingID             uint
	EmployeeID           uint
	EmployeeName         string
	ReportingManagerID   uint
	ReportingManagerName string
	Rating               int
	Feedback             string
	RatingDate           time.Time
}
