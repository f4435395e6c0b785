// Package error provides the concrete error payloads used with the expected containers.
//
// Both payload types implement contract.Error and integrate with the standard
// library's errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - CustomError: an arbitrary message with an optional cause and a structured
//     Context map, defensively cloned on read and write
//   - ErrnoError: a platform error code rendered through the platform's strerror table
//   - Raise panics with a typed exception (CustomException, ErrnoException) that
//     Recover turns back into a returned error
//
// Construction options are available via New and With* helpers, and Wrap/Ensure/Contextualize
// provide convenient utilities for adapting arbitrary errors.
package error
