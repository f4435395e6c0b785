// Package contract exposes the minimal error capability that payloads of the
// expected containers must implement.
//
// Implementations must keep Display free of side effects and make Raise
// terminal: it panics with the variant's exception value and never returns.
package contract

// Error is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Return the same text from Display() and Error().
//   - Panic from Raise(); a Raise that returns is a bug in the implementation.
//
// The interface embeds error so payloads interoperate with errors.Is / errors.As
// and fmt without adapters.
type Error interface {
	error
	// Display renders a human-readable message. It may be called any number of times.
	Display() string
	// Raise converts the error into a panic carrying its exception value.
	Raise()
}
