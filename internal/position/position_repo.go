package position

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, pos *Position) error
	FindByDepartment(ctx context.Context, departmentID uint) ([]Position, error)
	DepartmentExists(ctx context.Context, departmentID uint) (bool, error)
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

func (r *repository) Create(ctx context.Context, pos *Position) error {
	return r.db.WithContext(ctx).Create(pos).Error
}

func (r *repository) FindByDepartment(ctx context.Context, departmentID uint) ([]Position, error) {
	var positions []Position
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("title ASC").
		Find(&positions).Error
	return positions, err
}

func (r *repository) DepartmentExists(ctx context.Context, departmentID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count > 0, err
}
