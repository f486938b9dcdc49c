package database

import (
	"context"
	"fmt"

	"go-hrpms/internal/department"
	"go-hrpms/internal/position"
	"go-hrpms/internal/shared/textcase"
	"go-hrpms/internal/workforce"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed inserts the default departments, their role catalog and recruitment
// funnels. Rows that already exist are left untouched, so Seed can run on
// every migrate.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, d := range defaultDepartments {
			dept := department.Department{
				Name:    textcase.Title(d.Name),
				NameKey: textcase.Key(d.Name),
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name_key"}},
				DoNothing: true,
			}).Create(&dept).Error; err != nil {
				return fmt.Errorf("seed department %s: %w", d.Name, err)
			}

			// The insert above is a no-op for an existing department, so the
			// id is always read back.
			var stored department.Department
			if err := tx.Where("name_key = ?", dept.NameKey).First(&stored).Error; err != nil {
				return fmt.Errorf("load department %s: %w", d.Name, err)
			}

			for _, r := range d.Roles {
				pos := position.Position{
					DepartmentID:  stored.ID,
					Title:         r.Title,
					Description:   r.Description,
					Specification: r.Specification,
				}
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "department_id"}, {Name: "title"}},
					DoNothing: true,
				}).Create(&pos).Error; err != nil {
					return fmt.Errorf("seed position %s: %w", r.Title, err)
				}
			}

			funnel := workforce.RecruitmentFunnel{
				DepartmentID: stored.ID,
				Applicants:   d.Applicants,
				Interviews:   d.Interviews,
				Offers:       d.Offers,
				Hires:        d.Hires,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "department_id"}},
				DoNothing: true,
			}).Create(&funnel).Error; err != nil {
				return fmt.Errorf("seed funnel %s: %w", d.Name, err)
			}
		}
		return nil
	})
}
