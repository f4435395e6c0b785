package expected

import (
	"github.com/pkg/errors"

	"github.com/next-trace/scg-expected/contract"
)

// MaybeError holds either success with no payload or an error payload E.
//
// States: ok, error (unconsumed), consumed. The error payload is readable only in the
// error state and only once. The zero value is consumed.
type MaybeError[E contract.Error] struct {
	_    noCopy
	ok   bool
	live bool
	e    E
}

// Ok returns a successful MaybeError.
func Ok[E contract.Error]() *MaybeError[E] {
	return &MaybeError[E]{ok: true, live: true}
}

// Fail returns a MaybeError holding e. It panics with ErrNilPayload if e is a nil
// interface.
func Fail[E contract.Error](e E) *MaybeError[E] {
	checkPayload("Fail", e)

	return &MaybeError[E]{live: true, e: e}
}

// FailWith returns a MaybeError holding the payload of u, which is consumed.
// It panics with ErrMovedOut if u was already unpacked.
func FailWith[E contract.Error](u *Unexpected[E]) *MaybeError[E] {
	return Fail(must(u.Unpack()))
}

// IsOk reports whether m holds success. It never consumes and is valid in every state;
// a moved-from holder keeps reporting the tag it had.
func (m *MaybeError[E]) IsOk() bool {
	return m != nil && m.ok
}

// UnpackError returns the error payload and consumes m.
// It returns ErrMovedOut if m was consumed and a *WrongBranchError if m holds success.
func (m *MaybeError[E]) UnpackError() (E, error) {
	var zero E
	if m == nil || !m.live {
		return zero, movedOut("MaybeError.UnpackError")
	}

	if m.ok {
		return zero, wrongBranch("MaybeError.UnpackError", BranchError, "")
	}

	e := m.e
	m.e, m.live = zero, false

	return e, nil
}

// RaiseIfError is a no-op returning nil when m holds success. Otherwise it consumes m and
// calls Raise on the payload, which panics and does not return.
// It returns ErrMovedOut if m was consumed.
func (m *MaybeError[E]) RaiseIfError() error {
	if m == nil || !m.live {
		return movedOut("MaybeError.RaiseIfError")
	}

	if m.ok {
		return nil
	}

	return raise(m.UnpackError())
}

// Err bridges to a plain error: nil on success, otherwise the consumed payload.
// It returns ErrMovedOut if m was consumed.
func (m *MaybeError[E]) Err() error {
	if m.IsOk() && m.live {
		return nil
	}

	e, err := m.UnpackError()
	if err != nil {
		return err
	}

	return e
}

// Move transfers the tag and any unconsumed payload into a new MaybeError and leaves m
// consumed.
func (m *MaybeError[E]) Move() *MaybeError[E] {
	if m == nil {
		return &MaybeError[E]{}
	}

	var zero E
	n := &MaybeError[E]{ok: m.ok, live: m.live, e: m.e}
	m.e, m.live = zero, false

	return n
}

// Drop releases an unconsumed error payload, closing it if it implements io.Closer, and
// leaves m consumed. Dropping a consumed holder does nothing.
func (m *MaybeError[E]) Drop() {
	if m == nil || !m.live {
		return
	}

	if !m.ok {
		closeLive("MaybeError", m.e)
	}

	var zero E
	m.e, m.live = zero, false
}

// raise hands an unpacked payload to its Raise. A Raise that returns breaks the
// contract.Error contract; the payload is then returned as a plain error instead.
func raise[E contract.Error](e E, err error) error {
	if err != nil {
		return err
	}

	logger.Debug().Str("error", e.Display()).Msg("raising held error")
	e.Raise()

	return errors.Wrapf(e, "%T.Raise returned", e)
}
