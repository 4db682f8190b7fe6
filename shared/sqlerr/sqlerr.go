// Package sqlerr inspects database driver errors so callers can translate
// constraint violations into client-facing failures instead of opaque 500s.
package sqlerr

import (
	"errors"

	"github.com/lib/pq"

	"hotelfin/shared/constant"
)

// IsUniqueViolation reports whether err is a Postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}
