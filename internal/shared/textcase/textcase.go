// Package textcase holds the single canonical casing rules for department
// names: title case for display and storage, lower case for lookups.
package textcase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title returns s in title case ("engineering" -> "Engineering",
// "HR" -> "Hr"). cases.Caser is not safe for concurrent use, so one is
// built per call.
func Title(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

// Key is the case-insensitive identity of a name.
func Key(s string) string {
	return cases.Lower(language.English).String(strings.TrimSpace(s))
}
