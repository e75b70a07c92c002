package repository

import (
	"strings"
)

// IsUniqueViolation reports whether err is a sqlite unique-constraint
// failure. GORM surfaces it as a plain error, so string matching is the
// only handle.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
