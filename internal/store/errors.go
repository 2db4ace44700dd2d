package store

import (
	"errors"

	"github.com/lib/pq"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when an insert violates the users email
// uniqueness constraint. The constraint is the source of truth for
// concurrent signups; callers must not rely on a pre-check alone.
var ErrDuplicateEmail = errors.New("email already exists")

const uniqueViolation = "23505"

func translateUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateEmail
	}
	return err
}
