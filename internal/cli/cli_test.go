package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-expected/contract"
	scgerr "github.com/next-trace/scg-expected/error"
	"github.com/next-trace/scg-expected/expected"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return buf.String(), err
}

func TestRoot(t *testing.T) {
	r := Root(16)
	require.True(t, r.IsOk())
	assert.Equal(t, 4, r.MustUnpackOk())

	neg := Root(-4)
	require.False(t, neg.IsOk())
	e := neg.MustUnpackError()
	assert.Equal(t, -4, e.Num)
	assert.Equal(t, "Can not take root of negative number!", e.Display())
}

func TestRootOf_ForwardsParseError(t *testing.T) {
	res := rootOf("abc")
	require.False(t, res.IsOk())

	e := res.MustUnpackError()
	assert.Equal(t, `"abc" is not a number`, e.Display())

	var custom *scgerr.CustomError
	require.ErrorAs(t, e, &custom)
}

func TestRootOf_ForwardsNegative(t *testing.T) {
	res := rootOf("-9")
	require.False(t, res.IsOk())

	var neg NegativeNumberError
	require.ErrorAs(t, res.MustUnpackError(), &neg)
	assert.Equal(t, -9, neg.Num)
}

func TestRootCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "perfect square", args: []string{"root", "16"}, want: "The root of your number is: 4"},
		{name: "truncated", args: []string{"root", "17"}, want: "The root of your number is: 4"},
		{name: "negative", args: []string{"root", "--", "-4"}, want: "Failed to take root of your number: Can not take root of negative number!", wantErr: true},
		{name: "not a number", args: []string{"root", "x"}, wantErr: true},
		{name: "raise ok", args: []string{"root", "--raise", "9"}, want: "The root of your number is: 3"},
		{name: "raise error", args: []string{"root", "--raise", "--", "-1"}, want: "Raised: Can not take root of negative number!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			assert.Contains(t, out, tt.want)
		})
	}
}

func TestRaiseRoot_RecoversException(t *testing.T) {
	res := expected.FromError[int, contract.Error](NegativeNumberError{Num: -2})

	cmd := rootOfCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	err := raiseRoot(cmd, res)

	var x *scgerr.CustomException
	require.True(t, errors.As(err, &x))
	assert.Equal(t, -2, x.Raised().(*scgerr.CustomError).Context()["num"])

	assert.Contains(t, buf.String(), "Raised: Can not take root of negative number!")

	// a second raise reports the consumed holder instead of panicking
	err = raiseRoot(cmd, res)
	require.ErrorIs(t, err, expected.ErrMovedOut)
}

func TestVersionCmd_PrintsInfo(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)

	for _, want := range []string{"scg-expected version:", "Go version:", "Platform:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("unexpected output: %s", out)
		}
	}
}

func TestDebugFromEnv(t *testing.T) {
	tests := map[string]bool{
		"":      false,
		"0":     false,
		"false": false,
		"FALSE": false,
		"1":     true,
		"true":  true,
		"yes":   true,
	}

	for in, want := range tests {
		assert.Equal(t, want, debugFromEnv(in), "debugFromEnv(%q)", in)
	}
}
