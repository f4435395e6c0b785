package error

import (
	"errors"
	"fmt"

	"github.com/next-trace/scg-expected/contract"
)

// Wrap attaches a cause to a new CustomError. If cause is nil, an opaque cause is created.
// It preserves the original cause for errors.Is / errors.As via Unwrap().
func Wrap(cause error, message string, ctx map[string]any) *CustomError {
	if cause == nil {
		cause = errors.New("unknown")
	}

	return New(message, WithCause(cause), WithContext(ctx))
}

// Contextualize prefixes the rendered text of err with a formatted message and keeps
// err as the cause. It is used when forwarding an error up a call chain.
func Contextualize(err contract.Error, format string, args ...any) *CustomError {
	msg := fmt.Sprintf(format, args...)
	if err == nil {
		return New(msg)
	}

	return New(msg+": "+err.Display(), WithCause(err))
}

// Ensure converts any error to contract.Error.
//
// Behavior:
//   - nil input => nil output
//   - if err already implements contract.Error => returned as-is
//   - if err carries a platform error code => ErrnoError
//   - otherwise wrap it into a CustomError with the same text and err as cause
func Ensure(err error) contract.Error {
	if err == nil {
		return nil
	}

	var ce contract.Error
	if errors.As(err, &ce) {
		return ce
	}

	if e, ok := errnoFrom(err); ok {
		return e
	}

	return Wrap(err, err.Error(), nil)
}
