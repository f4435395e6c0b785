package expected

import "github.com/next-trace/scg-expected/contract"

// Unexpected carries one error payload destined for the error branch of an Expected or
// MaybeError. The zero value carries nothing and reports ErrMovedOut; build it with Unexpect.
type Unexpected[E contract.Error] struct {
	_    noCopy
	e    E
	live bool
}

// Unexpect wraps e. It panics with ErrNilPayload if e is a nil interface.
func Unexpect[E contract.Error](e E) *Unexpected[E] {
	checkPayload("Unexpect", e)

	return &Unexpected[E]{e: e, live: true}
}

// Unpack returns the wrapped payload. Every call after the first returns ErrMovedOut.
func (u *Unexpected[E]) Unpack() (E, error) {
	var zero E
	if u == nil || !u.live {
		return zero, movedOut("Unexpected.Unpack")
	}

	e := u.e
	u.e, u.live = zero, false

	return e, nil
}

// Move transfers the payload into a new wrapper and leaves u moved out.
func (u *Unexpected[E]) Move() *Unexpected[E] {
	if u == nil || !u.live {
		return &Unexpected[E]{}
	}

	var zero E
	m := &Unexpected[E]{e: u.e, live: true}
	u.e, u.live = zero, false

	return m
}
