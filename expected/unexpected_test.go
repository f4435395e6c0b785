package expected_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-expected/expected"
)

func TestUnexpected_UnpackOnce(t *testing.T) {
	t.Parallel()

	ec := &errorCase{errnum: 42}
	u := expected.Unexpect(ec)

	got, err := u.Unpack()
	require.NoError(t, err)
	require.Same(t, ec, got)
	require.Equal(t, 42, got.errnum)

	_, err = u.Unpack()
	requireMovedOut(t, err)
}

func TestUnexpected_Move(t *testing.T) {
	t.Parallel()

	ec := &errorCase{errnum: 42}
	u := expected.Unexpect(ec)
	u2 := u.Move()

	_, err := u.Unpack()
	requireMovedOut(t, err)

	got, err := u2.Unpack()
	require.NoError(t, err)
	require.Same(t, ec, got)

	_, err = u2.Unpack()
	requireMovedOut(t, err)
}

func TestUnexpected_MoveFromMovedStaysMoved(t *testing.T) {
	t.Parallel()

	u := expected.Unexpect(&errorCase{})
	_, err := u.Unpack()
	require.NoError(t, err)

	_, err = u.Move().Unpack()
	requireMovedOut(t, err)
}

func TestUnexpected_ZeroValueAndNil(t *testing.T) {
	t.Parallel()

	var zero expected.Unexpected[*errorCase]
	_, err := zero.Unpack()
	requireMovedOut(t, err)

	var nilPtr *expected.Unexpected[*errorCase]
	_, err = nilPtr.Unpack()
	requireMovedOut(t, err)
}
