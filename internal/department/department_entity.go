package department

import "time"

// Department names are stored title-cased; NameKey is the lower-cased form
// that makes "HR" and "hr" the same department.
type Department struct {
	ID        uint   `gorm:"column:department_id;primaryKey"`
	Name      string `gorm:"column:department_name;size:255;not null"`
	NameKey   string `gorm:"size:255;not null;uniqueIndex:uq_department_name_key"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HREmployee is an active member of the HR department.
type HREmployee struct {
	EmployeeID uint
	Name       string
}
