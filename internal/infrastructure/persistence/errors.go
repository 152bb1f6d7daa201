package persistence

import (
	"errors"
	"strings"

	"github.com/erp/erp-system/internal/domain/shared"
	"gorm.io/gorm"
)

// isUniqueViolation reports whether err came from a unique constraint.
// TranslateError covers both drivers; the message checks catch connections
// opened without it.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// notFound maps gorm.ErrRecordNotFound to shared.ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards in s; use with ESCAPE '\'
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// likePattern wraps s for a case-insensitive contains match
func likePattern(s string) string {
	return "%" + strings.ToLower(escapeLike(s)) + "%"
}
