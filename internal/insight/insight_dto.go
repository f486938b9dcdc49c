package insight

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot combines independent aggregate reads; fields may reflect
// slightly different points in time.
type Snapshot struct {
	TotalActive           int64                      `json:"total_active"`
	MaxSalary             decimal.NullDecimal        `json:"max_salary"`
	MinSalary             decimal.NullDecimal        `json:"min_salary"`
	AvgSalary             decimal.NullDecimal        `json:"avg_salary"`
	GenderCounts          map[string]int64           `json:"gender_counts"`
	GenderRatio           map[string]float64         `json:"gender_ratio"`
	AvgSalaryByDepartment map[string]decimal.Decimal `json:"avg_salary_by_department"`
	HeadcountByDepartment map[string]int64           `json:"headcount_by_department"`
	TasksByStatus         map[string]int64           `json:"tasks_by_status"`
	GeneratedAt           time.Time                  `json:"generated_at"`
}
