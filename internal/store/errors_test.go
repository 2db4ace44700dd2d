package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestTranslateUniqueViolation(t *testing.T) {
	t.Parallel()

	uniqueErr := &pq.Error{Code: uniqueViolation, Constraint: "users_email_key"}
	require.ErrorIs(t, translateUniqueViolation(uniqueErr), ErrDuplicateEmail)

	wrapped := fmt.Errorf("insert user: %w", uniqueErr)
	require.ErrorIs(t, translateUniqueViolation(wrapped), ErrDuplicateEmail)

	otherErr := &pq.Error{Code: "23503"}
	require.NotErrorIs(t, translateUniqueViolation(otherErr), ErrDuplicateEmail)

	plain := errors.New("connection refused")
	require.Equal(t, plain, translateUniqueViolation(plain))
}
