package expected_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-expected/contract"
	"github.com/next-trace/scg-expected/expected"
)

var errCustomException = errors.New("I am a little custom exception type")

// errorCase is an error payload that counts how often it was closed.
type errorCase struct {
	errnum int
	closed int
}

var _ contract.Error = (*errorCase)(nil)

func (e *errorCase) Error() string   { return "I'm a little custom error case" }
func (e *errorCase) Display() string { return e.Error() }
func (e *errorCase) Raise()          { panic(errCustomException) }

func (e *errorCase) Close() error {
	e.closed++
	return nil
}

// okCase is a success payload that counts how often it was closed.
type okCase struct {
	payload int
	closed  int
}

func (o *okCase) Close() error {
	o.closed++
	return nil
}

func requireMovedOut(t *testing.T, err error) {
	t.Helper()
	require.ErrorIs(t, err, expected.ErrMovedOut)
	require.NotErrorIs(t, err, expected.ErrWrongBranch)
}

func requireWrongBranch(t *testing.T, err error, want expected.Branch) *expected.WrongBranchError {
	t.Helper()
	require.ErrorIs(t, err, expected.ErrWrongBranch)
	require.NotErrorIs(t, err, expected.ErrMovedOut)

	var wb *expected.WrongBranchError
	require.ErrorAs(t, err, &wb)
	require.Equal(t, want, wb.Want)

	return wb
}

// panicErr runs fn and returns the error it panicked with.
func panicErr(t *testing.T, fn func()) (err error) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "function did not panic")

		var ok bool
		err, ok = r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
	}()

	fn()

	return nil
}
