package error

import "github.com/next-trace/scg-expected/contract"

// Exception is the panic value produced by Raise on the payloads of this package.
type Exception interface {
	error
	// Raised returns the payload that was raised.
	Raised() contract.Error
}

// CustomException is raised by (*CustomError).Raise.
type CustomException struct {
	err *CustomError
}

func (x *CustomException) Error() string          { return x.err.Display() }
func (x *CustomException) Unwrap() error          { return x.err }
func (x *CustomException) Raised() contract.Error { return x.err }

// Recover runs fn and converts a raised Exception back into a returned error.
// Panics that are not an Exception propagate unchanged.
func Recover(fn func()) (raised error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if x, ok := r.(Exception); ok {
			raised = x
			return
		}

		panic(r)
	}()

	fn()

	return nil
}
