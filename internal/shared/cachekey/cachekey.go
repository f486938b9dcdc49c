// Package cachekey names every Redis key the services read or invalidate.
package cachekey

import "strconv"

const (
	InsightsSnapshot  = "insights:snapshot"
	DepartmentsLookup = "departments:lookup"
)

const positionsByDepartmentPrefix = "positions:department:"

// PositionsByDepartment is the role catalog of one department.
func PositionsByDepartment(departmentID uint) string {
	return positionsByDepartmentPrefix + strconv.FormatUint(uint64(departmentID), 10)
}
