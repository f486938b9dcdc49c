package workforce

import (
	"context"

	"go-hrpms/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=workforce_repo.go -destination=mock/workforce_repo_mock.go -package=mock
type Repository interface {
	ListFunnels(ctx context.Context) ([]FunnelRow, error)
	FindFunnel(ctx context.Context, departmentID uint) (RecruitmentFunnel, error)
	Upsert(ctx context.Context, f *RecruitmentFunnel) error
	DepartmentExists(ctx context.Context, departmentID uint) (bool, error)
	CountActive(ctx context.Context, departmentID uint, jobTitle string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListFunnels(ctx context.Context) ([]FunnelRow, error) {
	var rows []FunnelRow
	err := r.db.WithContext(ctx).
		Table("recruitment_funnels f").
		Select("f.department_id, d.department_name, f.applicants, f.interviews, f.offers, f.hires").
		Joins("JOIN departments d ON d.department_id = f.department_id").
		Order("f.department_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindFunnel(ctx context.Context, departmentID uint) (RecruitmentFunnel, error) {
	var f RecruitmentFunnel
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		First(&f).Error
	return f, err
}

func (r *repository) Upsert(ctx context.Context, f *RecruitmentFunnel) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "department_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"applicants", "interviews", "offers", "hires", "updated_at"}),
		}).
		Create(f).Error
}

func (r *repository) DepartmentExists(ctx context.Context, departmentID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CountActive(ctx context.Context, departmentID uint, jobTitle string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Scopes(scope.Active("")).
		Where("department_id = ? AND job_title = ?", departmentID, jobTitle).
		Count(&count).Error
	return count, err
}
