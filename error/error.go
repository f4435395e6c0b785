package error

import (
	"fmt"

	"github.com/next-trace/scg-expected/contract"
)

// CustomError is an error payload carrying an arbitrary message.
//
// Fields:
//   - Message: human-readable text returned by Display and Error
//   - Context: everything else (ids, hints, offending input, etc.)
//   - Cause:   optional underlying error exposed via Unwrap
type CustomError struct {
	message string
	context map[string]any
	cause   error
}

// compile-time guarantee that *CustomError implements contract.Error
var _ contract.Error = (*CustomError)(nil)

// ------ standard error interface

func (e *CustomError) Error() string {
	if e == nil {
		return "<nil>"
	}

	return e.message
}

func (e *CustomError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// ------ contract.Error

// Display returns the message the error was created with.
func (e *CustomError) Display() string { return e.Error() }

// Raise panics with a *CustomException wrapping e.
func (e *CustomError) Raise() {
	panic(&CustomException{err: e})
}

// ------ getters

func (e *CustomError) Message() string         { return e.message }
func (e *CustomError) Context() map[string]any { return cloneMap(e.context) }

// ------ core constructors

// New creates a CustomError with the given message.
// Options are applied in order; see WithCause and WithContext.
func New(message string, opts ...Option) *CustomError {
	e := &CustomError{message: message}
	for _, o := range opts {
		o(e)
	}

	return e
}

// Newf is New with a fmt-formatted message.
func Newf(format string, args ...any) *CustomError {
	return New(fmt.Sprintf(format, args...))
}

// ------ fluent helpers (chainable, mutate receiver intentionally)

// WithContextKV sets a single key/value in the error context map and returns the same receiver for chaining.
// The internal context map is created on first use.
func (e *CustomError) WithContextKV(k string, v any) *CustomError {
	if e == nil {
		return nil
	}

	if e.context == nil {
		e.context = map[string]any{}
	}

	e.context[k] = v

	return e
}

// WithContextMap merges the provided map into the error context and returns the same receiver for chaining.
// Nil or empty maps are ignored. Existing keys are overwritten.
func (e *CustomError) WithContextMap(m map[string]any) *CustomError {
	if e == nil || len(m) == 0 {
		return e
	}

	if e.context == nil {
		e.context = map[string]any{}
	}

	for k, v := range cloneMap(m) {
		e.context[k] = v
	}

	return e
}

func cloneMap(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]any, len(in))

	for k, v := range in {
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneMap(mv)
			continue
		}

		out[k] = v
	}

	return out
}
