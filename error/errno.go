//go:build unix

package error

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/next-trace/scg-expected/contract"
)

// Errno is a platform error code.
type Errno syscall.Errno

// Commonly used platform error codes. Errnos lists the full catalogue.
const (
	EPERM        = Errno(unix.EPERM)
	ENOENT       = Errno(unix.ENOENT)
	EINTR        = Errno(unix.EINTR)
	EIO          = Errno(unix.EIO)
	EBADF        = Errno(unix.EBADF)
	EAGAIN       = Errno(unix.EAGAIN)
	ENOMEM       = Errno(unix.ENOMEM)
	EACCES       = Errno(unix.EACCES)
	EBUSY        = Errno(unix.EBUSY)
	EEXIST       = Errno(unix.EEXIST)
	ENOTDIR      = Errno(unix.ENOTDIR)
	EISDIR       = Errno(unix.EISDIR)
	EINVAL       = Errno(unix.EINVAL)
	ENOSPC       = Errno(unix.ENOSPC)
	EPIPE        = Errno(unix.EPIPE)
	ERANGE       = Errno(unix.ERANGE)
	ENOSYS       = Errno(unix.ENOSYS)
	ETIMEDOUT    = Errno(unix.ETIMEDOUT)
	ECONNREFUSED = Errno(unix.ECONNREFUSED)
)

// maxErrno bounds the catalogue scan; no supported platform defines codes above it.
const maxErrno = 4096

// Name returns the symbolic name of the code (e.g. "ENOMEM"), or "" when unknown.
func (n Errno) Name() string { return unix.ErrnoName(syscall.Errno(n)) }

// String returns the platform's text for the code.
func (n Errno) String() string { return syscall.Errno(n).Error() }

type errnoCatalogue struct {
	codes  []Errno
	byName map[string]Errno
}

var catalogue = sync.OnceValue(func() errnoCatalogue {
	c := errnoCatalogue{byName: make(map[string]Errno)}

	for i := 1; i < maxErrno; i++ {
		n := Errno(i)
		if name := n.Name(); name != "" {
			c.codes = append(c.codes, n)
			c.byName[name] = n
		}
	}

	return c
})

// Errnos returns every code the platform has a name for, in ascending order.
func Errnos() []Errno {
	return slices.Clone(catalogue().codes)
}

// ParseErrno resolves a symbolic name such as "ENOENT" (case-insensitive) to its code.
func ParseErrno(name string) (Errno, bool) {
	n, ok := catalogue().byName[strings.ToUpper(strings.TrimSpace(name))]

	return n, ok
}

// ErrnoError is an error payload wrapping a platform error code.
type ErrnoError struct {
	errno Errno
}

var _ contract.Error = ErrnoError{}

// NewErrnoError wraps the given code.
func NewErrnoError(n Errno) ErrnoError { return ErrnoError{errno: n} }

// ErrnoFrom extracts a platform error code from err's chain.
func ErrnoFrom(err error) (ErrnoError, bool) {
	var n syscall.Errno
	if !errors.As(err, &n) {
		return ErrnoError{}, false
	}

	return NewErrnoError(Errno(n)), true
}

// Errnum returns the wrapped code.
func (e ErrnoError) Errnum() Errno { return e.errno }

func (e ErrnoError) Error() string   { return e.errno.String() }
func (e ErrnoError) Display() string { return e.errno.String() }

// Unwrap exposes the code as a syscall.Errno so errors.Is(err, syscall.ENOENT) works.
func (e ErrnoError) Unwrap() error { return syscall.Errno(e.errno) }

// Raise panics with an *ErrnoException carrying the code.
func (e ErrnoError) Raise() {
	panic(&ErrnoException{errno: e.errno})
}

func errnoFrom(err error) (contract.Error, bool) {
	e, ok := ErrnoFrom(err)
	if !ok {
		return nil, false
	}

	return e, true
}
