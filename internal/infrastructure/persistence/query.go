package persistence

import (
	"strings"

	"github.com/erp/erp-system/internal/domain/shared"
	"gorm.io/gorm"
)

// searchAny adds a case-insensitive contains match over columns, joined with OR
func searchAny(db *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return db
	}
	pattern := likePattern(term)
	conds := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		conds[i] = "LOWER(" + col + `) LIKE ? ESCAPE '\'`
		args[i] = pattern
	}
	return db.Where("("+strings.Join(conds, " OR ")+")", args...)
}

// withinRange filters column to the inclusive date range r
func withinRange(db *gorm.DB, column string, r shared.DateRange) *gorm.DB {
	if r.From != nil {
		db = db.Where(column+" >= ?", *r.From)
	}
	if r.To != nil {
		db = db.Where(column+" <= ?", *r.To)
	}
	return db
}

// stringsOf converts a slice of string-kinded values for an IN clause
func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
