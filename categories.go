package budget

import "strings"

// Categories is the closed set of spending categories offered by the entry
// form and suggested to the receipt extraction model.
var Categories = []string{
	"Food & Dining",
	"Groceries",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Health",
	"Bills & Utilities",
	"Savings",
	"Other",
}

// CategoryOther is the fallback category.
const CategoryOther = "Other"

// NormalizeCategory maps a free-text category onto the closed set when it
// matches one (case-insensitively). An unrecognized value is accepted as-is:
// the receipt extraction contract tolerates categories outside the set.
func NormalizeCategory(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryOther
	}
	for _, c := range Categories {
		if strings.EqualFold(c, s) {
			return c
		}
	}
	return s
}

// KnownCategory reports whether s belongs to the closed category set.
func KnownCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}
