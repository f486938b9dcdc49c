package task

import (
	"context"

	"go-hrpms/internal/shared/scope"

	"gorm.io/gorm"
)

const rowColumns = `t.task_id, t.employee_id, e.name AS employee_name,
	t.task_description, t.due_date, t.status`

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, t *Task) error
	ListByDueDate(ctx context.Context) ([]TaskRow, error)
	ListForEmployee(ctx context.Context, employeeID uint) ([]TaskRow, error)
	FindRowByID(ctx context.Context, taskID uint) (*TaskRow, error)
	EmployeeIsActive(ctx context.Context, employeeID uint) (bool, error)
	UpdateStatus(ctx context.Context, taskID uint, status string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("tasks t").
		Select(rowColumns).
		Joins("JOIN employees e ON e.employee_id = t.employee_id")
}

// ListByDueDate covers every task, including those of archived employees.
func (r *repository) ListByDueDate(ctx context.Context) ([]TaskRow, error) {
	var rows []TaskRow
	err := r.joined(ctx).
		Order("t.due_date ASC").
		Order("t.task_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ListForEmployee(ctx context.Context, employeeID uint) ([]TaskRow, error) {
	var rows []TaskRow
	err := r.joined(ctx).
		Where("t.employee_id = ?", employeeID).
		Order("t.due_date ASC").
		Order("t.task_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindRowByID(ctx context.Context, taskID uint) (*TaskRow, error) {
	var row TaskRow
	err := r.joined(ctx).
		Where("t.task_id = ?", taskID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) EmployeeIsActive(ctx context.Context, employeeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Scopes(scope.Active("")).
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

// UpdateStatus writes only the status column.
func (r *repository) UpdateStatus(ctx context.Context, taskID uint, status string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Task{}).
		Where("task_id = ?", taskID).
		UpdateColumn("status", status)
	return res.RowsAffected, res.Error
}
