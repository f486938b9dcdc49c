package scope

import "gorm.io/gorm"

// Active restricts a query to active employees. alias is the table alias
// used in the query ("e"), or empty for the bare employees table.
func Active(alias string) func(db *gorm.DB) *gorm.DB {
	column := "is_active"
	if alias != "" {
		column = alias + ".is_active"
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", true)
	}
}
