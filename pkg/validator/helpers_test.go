package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/requirements/pkg/validator"
)

// assertPrecondition checks that fn panics with an engine precondition error.
func assertPrecondition(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a precondition panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.ErrorIs(t, err, validator.ErrPrecondition)
	}()
	fn()
}

func onlyFailure(t *testing.T, s *validator.Session) validator.Failure {
	t.Helper()
	failures := s.Failures().All()
	require.Len(t, failures, 1)
	return failures[0]
}
