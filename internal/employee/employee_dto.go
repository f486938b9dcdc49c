package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type CreateEmployeeRequest struct {
	Name         string          `json:"name" binding:"required,max=255"`
	Email        string          `json:"email" binding:"required,email,max=255"`
	Phone        string          `json:"phone" binding:"omitempty,max=50"`
	DepartmentID uint            `json:"department_id" binding:"required"`
	JobTitle     string          `json:"job_title" binding:"omitempty,max=255"`
	Salary       decimal.Decimal `json:"salary"`
	HireDate     string          `json:"hire_date" binding:"required,datetime=2006-01-02"`
	Gender       string          `json:"gender" binding:"omitempty,max=32"`
	ProfilePhoto string          `json:"profile_photo" binding:"omitempty,max=1024"`
}

type UpdateEmployeeRequest struct {
	Name         string          `json:"name" binding:"required,max=255"`
	Email        string          `json:"email" binding:"required,email,max=255"`
	Phone        string          `json:"phone" binding:"omitempty,max=50"`
	DepartmentID uint            `json:"department_id" binding:"required"`
	JobTitle     string          `json:"job_title" binding:"omitempty,max=255"`
	Salary       decimal.Decimal `json:"salary"`
	HireDate     string          `json:"hire_date" binding:"required,datetime=2006-01-02"`
	Gender       string          `json:"gender" binding:"omitempty,max=32"`
	ProfilePhoto string          `json:"profile_photo" binding:"omitempty,max=1024"`
}

type EmployeeResponse struct {
	ID             uint            `json:"employee_id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	DepartmentID   uint            `json:"department_id"`
	DepartmentName string          `json:"department_name"`
	JobTitle       string          `json:"job_title"`
	Salary         decimal.Decimal `json:"salary"`
	HireDate       string          `json:"hire_date"`
	Gender         string          `json:"gender"`
	ProfilePhoto   string          `json:"profile_photo"`
	IsActive       bool            `json:"is_active"`
}

type DeletedEmployeeResponse struct {
	EmployeeID   uint      `json:"employee_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	DeletionDate time.Time `json:"deletion_date"`
}
