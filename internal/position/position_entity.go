package position

import "time"

// Position is one job title in a department's role catalog. Description and
// Specification hold the job description and the candidate requirements.
type Position struct {
	ID            uint   `gorm:"column:position_id;primaryKey"`
	DepartmentID  uint   `gorm:"not null;uniqueIndex:uq_position_department_title,priority:1"`
	Title         string `gorm:"size:255;not null;uniqueIndex:uq_position_department_title,priority:2"`
	Description   string `gorm:"type:text"`
	Specification string `gorm:"type:text"`
	CreatedAt     time.Time
}
