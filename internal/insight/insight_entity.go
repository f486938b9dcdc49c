package insight

import "github.com/shopspring/decimal"

// SalaryStats is NULL-valued when there are no active employees.
type SalaryStats struct {
	MaxSalary decimal.NullDecimal
	MinSalary decimal.NullDecimal
	AvgSalary decimal.NullDecimal
}

type GenderCount struct {
	Gender string
	Count  int64
}

type DepartmentStat struct {
	DepartmentName string
	Headcount      int64
	TotalSalary    decimal.Decimal
}

type StatusCount struct {
	Status string
	Count  int64
}
