package database

import (
	"fmt"

	"go-hrpms/internal/auth"
	"go-hrpms/internal/department"
	"go-hrpms/internal/employee"
	"go-hrpms/internal/messaging/kafka"
	"go-hrpms/internal/position"
	"go-hrpms/internal/rating"
	"go-hrpms/internal/task"
	"go-hrpms/internal/workforce"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists every persisted type in creation order.
func Models() []any {
	return []any{
		&department.Department{},
		&position.Position{},
		&employee.Employee{},
		&employee.DeletedEmployee{},
		&task.Task{},
		&rating.PerformanceRating{},
		&workforce.RecruitmentFunnel{},
		&auth.User{},
		&kafka.OutboxEvent{},
	}
}

// Migrate creates or updates the schema. Foreign keys and expression
// indexes are only added on postgres.
func Migrate(db *gorm.DB, logger ...*zap.Logger) error {
	l := zap.L().Named("database")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("database")
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := addForeignKeys(db, l); err != nil {
		return err
	}
	return addIndexes(db, l)
}

type foreignKey struct {
	table      string
	name       string
	column     string
	references string
	onDelete   string
}

var foreignKeys = []foreignKey{
	{"positions", "fk_positions_department", "department_id", "departments(department_id)", "CASCADE"},
	{"employees", "fk_employees_department", "department_id", "departments(department_id)", "RESTRICT"},
	{"deleted_employees", "fk_deleted_employees_employee", "employee_id", "employees(employee_id)", "CASCADE"},
	{"tasks", "fk_tasks_employee", "employee_id", "employees(employee_id)", "CASCADE"},
	{"performance_ratings", "fk_ratings_employee", "employee_id", "employees(employee_id)", "CASCADE"},
	{"performance_ratings", "fk_ratings_manager", "reporting_manager_id", "employees(employee_id)", "RESTRICT"},
	{"recruitment_funnels", "fk_funnels_department", "department_id", "departments(department_id)", "CASCADE"},
}

func addForeignKeys(db *gorm.DB, l *zap.Logger) error {
	for _, fk := range foreignKeys {
		var count int64
		err := db.Raw(`SELECT COUNT(*) FROM pg_constraint WHERE conname = ?`, fk.name).Scan(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check constraint %s: %w", fk.name, err)
		}
		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s ON DELETE %s",
			fk.table, fk.name, fk.column, fk.references, fk.onDelete)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to add constraint %s: %w", fk.name, err)
		}
		l.Info("added foreign key", zap.String("constraint", fk.name), zap.String("table", fk.table))
	}
	return nil
}

var indexes = []struct {
	table      string
	name       string
	definition string
}{
	// Search matches on lower(name) and lower(email).
	{"employees", "idx_employees_lower_name", "(lower(name))"},
	{"employees", "idx_employees_lower_email", "(lower(email))"},
	{"tasks", "idx_tasks_due_date_task_id", "(due_date, task_id)"},
	{"outbox_events", "idx_outbox_pending", "(created_at) WHERE status IN ('pending', 'failed')"},
}

func addIndexes(db *gorm.DB, l *zap.Logger) error {
	for _, idx := range indexes {
		sql := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s %s", idx.name, idx.table, idx.definition)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
		l.Debug("index ensured", zap.String("index", idx.name))
	}
	return nil
}
