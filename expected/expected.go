package expected

import (
	"fmt"

	"github.com/next-trace/scg-expected/contract"
)

// Expected holds either a success value T or an error payload E.
//
// Only the branch named by the tag is live; the other field stays the zero value.
// Reading a payload consumes the holder, after which every read returns ErrMovedOut.
// The zero value is consumed.
type Expected[T any, E contract.Error] struct {
	_    noCopy
	ok   bool
	live bool
	t    T
	e    E
}

// Success returns an Expected holding t.
func Success[T any, E contract.Error](t T) *Expected[T, E] {
	return &Expected[T, E]{ok: true, live: true, t: t}
}

// Failure returns an Expected holding the payload of u, which is consumed.
// It panics with ErrMovedOut if u was already unpacked.
func Failure[T any, E contract.Error](u *Unexpected[E]) *Expected[T, E] {
	return FromError[T](must(u.Unpack()))
}

// FromError is shorthand for Failure[T](Unexpect(e)).
// It panics with ErrNilPayload if e is a nil interface.
func FromError[T any, E contract.Error](e E) *Expected[T, E] {
	checkPayload("FromError", e)

	return &Expected[T, E]{live: true, e: e}
}

// IsOk reports whether r holds a success value. It never consumes and is valid in every
// state; a moved-from holder keeps reporting the tag it had.
func (r *Expected[T, E]) IsOk() bool {
	return r != nil && r.ok
}

// UnpackOk returns the success value and consumes r.
//
// It returns ErrMovedOut if r was consumed. If r holds an error it returns a
// *WrongBranchError carrying the rendered error and leaves r untouched.
func (r *Expected[T, E]) UnpackOk() (T, error) {
	var zero T
	if r == nil || !r.live {
		return zero, movedOut("Expected.UnpackOk")
	}

	if !r.ok {
		return zero, wrongBranch("Expected.UnpackOk", BranchOk, r.e.Display())
	}

	t := r.t
	r.t, r.live = zero, false

	return t, nil
}

// UnpackError returns the error payload and consumes r.
//
// It returns ErrMovedOut if r was consumed. If r holds a success value it returns a
// *WrongBranchError naming the value's type and leaves r untouched.
func (r *Expected[T, E]) UnpackError() (E, error) {
	var zero E
	if r == nil || !r.live {
		return zero, movedOut("Expected.UnpackError")
	}

	if r.ok {
		return zero, wrongBranch("Expected.UnpackError", BranchError, fmt.Sprintf("holds %T", r.t))
	}

	e := r.e
	r.e, r.live = zero, false

	return e, nil
}

// MustUnpackOk is UnpackOk panicking with the misuse error.
func (r *Expected[T, E]) MustUnpackOk() T {
	return must(r.UnpackOk())
}

// MustUnpackError is UnpackError panicking with the misuse error.
func (r *Expected[T, E]) MustUnpackError() E {
	return must(r.UnpackError())
}

// RaiseIfError is a no-op returning nil when r holds a success value; the value stays
// extractable. Otherwise it consumes r and calls Raise on the payload, which panics and
// does not return. It returns ErrMovedOut if r was consumed.
func (r *Expected[T, E]) RaiseIfError() error {
	if r == nil || !r.live {
		return movedOut("Expected.RaiseIfError")
	}

	if r.ok {
		return nil
	}

	return raise(r.UnpackError())
}

// Get bridges to Go's (value, error) convention, consuming whichever branch is live.
// A consumed holder yields ErrMovedOut.
func (r *Expected[T, E]) Get() (T, error) {
	if r.IsOk() {
		return r.UnpackOk()
	}

	var zero T

	e, err := r.UnpackError()
	if err != nil {
		return zero, err
	}

	return zero, e
}

// Move transfers the tag and the live payload into a new Expected and leaves r consumed
// with no live payload.
func (r *Expected[T, E]) Move() *Expected[T, E] {
	if r == nil {
		return &Expected[T, E]{}
	}

	var (
		zeroT T
		zeroE E
	)

	n := &Expected[T, E]{ok: r.ok, live: r.live, t: r.t, e: r.e}
	r.t, r.e, r.live = zeroT, zeroE, false

	return n
}

// Drop releases the live payload, closing it if it implements io.Closer, and leaves r
// consumed. Only the live branch is closed. Dropping a consumed holder does nothing.
func (r *Expected[T, E]) Drop() {
	if r == nil || !r.live {
		return
	}

	if r.ok {
		closeLive("Expected", r.t)
	} else {
		closeLive("Expected", r.e)
	}

	var (
		zeroT T
		zeroE E
	)

	r.t, r.e, r.live = zeroT, zeroE, false
}
