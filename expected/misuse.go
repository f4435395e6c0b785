package expected

import (
	"fmt"

	"github.com/pkg/errors"
)

type sentinel string

func (s sentinel) Error() string { return string(s) }

const (
	// ErrMovedOut is returned when a payload is read from a holder that was already
	// consumed or moved from.
	ErrMovedOut sentinel = "expected: accessing already moved out value"

	// ErrWrongBranch matches every *WrongBranchError via errors.Is.
	ErrWrongBranch sentinel = "expected: unpacking a branch the holder does not hold"

	// ErrNilPayload is the panic value, wrapped with a stack, when a nil interface is
	// passed as an error payload.
	ErrNilPayload sentinel = "expected: nil error payload"
)

// Branch names one of the two alternatives of a holder.
type Branch uint8

const (
	// BranchOk is the success branch.
	BranchOk Branch = iota
	// BranchError is the error branch.
	BranchError
)

func (b Branch) String() string {
	if b == BranchOk {
		return "ok"
	}

	return "error"
}

// WrongBranchError reports an unpack of the branch a holder does not hold.
type WrongBranchError struct {
	// Want is the branch the caller asked for.
	Want Branch
	// Detail describes the held payload: the rendered error when the holder is in the
	// error branch, the value's type when it is in the ok branch.
	Detail string
}

func (e *WrongBranchError) Error() string {
	held := BranchError
	if e.Want == BranchError {
		held = BranchOk
	}

	msg := fmt.Sprintf("expected: unpack %s on %s holder", e.Want, held)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

func (e *WrongBranchError) Is(target error) bool { return target == ErrWrongBranch }

func movedOut(op string) error {
	logger.Warn().Str("op", op).Msg("accessing already moved out value")

	return errors.WithStack(ErrMovedOut)
}

func wrongBranch(op string, want Branch, detail string) error {
	logger.Warn().Str("op", op).Stringer("want", want).Str("detail", detail).Msg("unpacking wrong branch")

	return errors.WithStack(&WrongBranchError{Want: want, Detail: detail})
}

// checkPayload panics with ErrNilPayload if e is a nil interface.
func checkPayload[E any](op string, e E) {
	if any(e) != nil {
		return
	}

	logger.Warn().Str("op", op).Msg("nil error payload")
	panic(errors.WithStack(ErrNilPayload))
}

// must panics with err, used where a misuse cannot be reported through a return value.
func must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}

	return v
}
