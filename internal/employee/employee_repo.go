package employee

import (
	"context"
	"strings"

	"go-hrpms/internal/shared/scope"

	"gorm.io/gorm"
)

const rowColumns = `e.employee_id, e.name, e.email, e.phone, e.department_id,
	d.department_name, e.job_title, e.salary, e.hire_date, e.gender,
	e.profile_photo, e.is_active`

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id uint) (*Employee, error)
	FindRowByID(ctx context.Context, id uint) (*EmployeeRow, error)
	ListActive(ctx context.Context) ([]EmployeeRow, error)
	Search(ctx context.Context, term string) ([]EmployeeRow, error)
	Update(ctx context.Context, id uint, fields map[string]any) (int64, error)
	DepartmentExists(ctx context.Context, departmentID uint) (bool, error)
	Archive(ctx context.Context, archived *DeletedEmployee) error
	Deactivate(ctx context.Context, id uint) (int64, error)
	ListDeleted(ctx context.Context) ([]DeletedEmployee, error)
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "employee_id = ?", id).Error
	return &empl, err
}

func (r *repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("employees e").
		Select(rowColumns).
		Joins("JOIN departments d ON d.department_id = e.department_id")
}

func (r *repository) FindRowByID(ctx context.Context, id uint) (*EmployeeRow, error) {
	var rows []EmployeeRow
	err := r.joined(ctx).
		Where("e.employee_id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *repository) ListActive(ctx context.Context) ([]EmployeeRow, error) {
	var rows []EmployeeRow
	err := r.joined(ctx).
		Scopes(scope.Active("e")).
		Order("e.employee_id ASC").
		Scan(&rows).Error
	return rows, err
}

// Search matches term as a case-insensitive substring of name or email.
// LIKE wildcards in term are matched literally.
func (r *repository) Search(ctx context.Context, term string) ([]EmployeeRow, error) {
	pattern := likePattern(term)

	var rows []EmployeeRow
	err := r.joined(ctx).
		Scopes(scope.Active("e")).
		Where(`(LOWER(e.name) LIKE ? ESCAPE '\' OR LOWER(e.email) LIKE ? ESCAPE '\')`, pattern, pattern).
		Order("e.employee_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, id uint, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("employee_id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *repository) DepartmentExists(ctx context.Context, departmentID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Archive(ctx context.Context, archived *DeletedEmployee) error {
	return r.db.WithContext(ctx).Create(archived).Error
}

func (r *repository) Deactivate(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(scope.Active("")).
		Where("employee_id = ?", id).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

func (r *repository) ListDeleted(ctx context.Context) ([]DeletedEmployee, error) {
	var rows []DeletedEmployee
	err := r.db.WithContext(ctx).
		Order("deletion_date DESC").
		Order("employee_id DESC").
		Find(&rows).Error
	return rows, err
}

func likePattern(term string) string {
	term = strings.ToLower(term)
	term = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + term + "%"
}
