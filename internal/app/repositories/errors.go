package repositories

import (
	"errors"

	"github.com/axela/cetpro-backend/internal/pkg/dberrors"
)

// ErrNotFound is the shared not-found sentinel; entity-specific aliases wrap
// it so services can match either.
var ErrNotFound = errors.New("record not found")

// isDuplicateKeyError reports a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	return dberrors.IsUniqueViolation(err)
}
