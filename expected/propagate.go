package expected

import (
	"github.com/next-trace/scg-expected/contract"
	scgerr "github.com/next-trace/scg-expected/error"
)

// Bind consumes r. On success it returns the value and a nil forward. On error it returns
// the zero T and a new Expected[U, E] holding the same error, ready to be returned:
//
//	n, fwd := expected.Bind[Out](compute())
//	if fwd != nil {
//		return fwd
//	}
//
// Bind panics with the misuse error if r was already consumed.
func Bind[U, T any, E contract.Error](r *Expected[T, E]) (T, *Expected[U, E]) {
	if !r.IsOk() {
		var zero T
		return zero, Forward[U](r)
	}

	return must(r.UnpackOk()), nil
}

// Forward consumes the error held by r and returns it in an Expected of another success
// type. It panics with the misuse error if r holds a value or was already consumed.
func Forward[U, T any, E contract.Error](r *Expected[T, E]) *Expected[U, E] {
	return FromError[U](must(r.UnpackError()))
}

// AndThen feeds the value of r to fn, or forwards the error of r without calling fn.
func AndThen[T, U any, E contract.Error](r *Expected[T, E], fn func(T) *Expected[U, E]) *Expected[U, E] {
	v, fwd := Bind[U](r)
	if fwd != nil {
		return fwd
	}

	return fn(v)
}

// Map transforms the value of r with fn, or forwards the error of r without calling fn.
func Map[T, U any, E contract.Error](r *Expected[T, E], fn func(T) U) *Expected[U, E] {
	v, fwd := Bind[U](r)
	if fwd != nil {
		return fwd
	}

	return Success[U, E](fn(v))
}

// CheckStatus consumes a failed m and returns its error prefixed with a formatted
// message, ready to be returned. It returns nil when m holds success and panics with
// the misuse error if m was already consumed.
//
//	if fwd := expected.CheckStatus(flush(), "flushing %s", name); fwd != nil {
//		return fwd
//	}
func CheckStatus[E contract.Error](m *MaybeError[E], format string, args ...any) *MaybeError[*scgerr.CustomError] {
	if m.IsOk() && m.live {
		return nil
	}

	return Fail(scgerr.Contextualize(must(m.UnpackError()), format, args...))
}

// FromTuple adapts a Go (value, error) pair. A non-nil err becomes the error branch via
// scgerr.Ensure; v is discarded in that case.
func FromTuple[T any](v T, err error) *Expected[T, contract.Error] {
	if err != nil {
		return FromError[T](scgerr.Ensure(err))
	}

	return Success[T, contract.Error](v)
}

// StatusOf adapts a plain error: nil becomes success.
func StatusOf(err error) *MaybeError[contract.Error] {
	if err != nil {
		return Fail(scgerr.Ensure(err))
	}

	return Ok[contract.Error]()
}
