package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Employee struct {
	ID           uint            `gorm:"column:employee_id;primaryKey"`
	Name         string          `gorm:"size:255;not null"`
	Email        string          `gorm:"size:255;not null;uniqueIndex:uq_employee_email"`
	Phone        string          `gorm:"size:50"`
	DepartmentID uint            `gorm:"not null;index"`
	JobTitle     string          `gorm:"size:255"`
	Salary       decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_employees_salary,salary >= 0"`
	HireDate     datatypes.Date
	Gender       string `gorm:"size:32"`
	ProfilePhoto string `gorm:"size:1024"`
	IsActive     bool   `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DeletedEmployee is the archival copy written once per soft delete.
type DeletedEmployee struct {
	EmployeeID   uint      `gorm:"primaryKey;autoIncrement:false"`
	Name         string    `gorm:"size:255;not null"`
	Email        string    `gorm:"size:255;not null"`
	DeletionDate time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index"`
}

// EmployeeRow is an employee joined with its department name as stored.
type EmployeeRow struct {
	EmployeeID     uint
	Name           string
	Email          string
	Phone          string
	DepartmentID   uint
	DepartmentName string
	JobTitle       string
	Salary         decimal.Decimal
	HireDate       datatypes.Date
	Gender         string
	ProfilePhoto   string
	IsActive       bool
}
