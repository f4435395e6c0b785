//go:build unix

package error

import (
	"syscall"

	"github.com/next-trace/scg-expected/contract"
)

// ErrnoException is raised by ErrnoError.Raise.
type ErrnoException struct {
	errno Errno
}

// Errnum returns the raised code.
func (x *ErrnoException) Errnum() Errno          { return x.errno }
func (x *ErrnoException) Error() string          { return x.errno.String() }
func (x *ErrnoException) Unwrap() error          { return syscall.Errno(x.errno) }
func (x *ErrnoException) Raised() contract.Error { return NewErrnoError(x.errno) }
