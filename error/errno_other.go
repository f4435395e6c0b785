//go:build !unix

package error

import "github.com/next-trace/scg-expected/contract"

// Platform error codes are only catalogued on unix; elsewhere Ensure falls back to CustomError.
func errnoFrom(error) (contract.Error, bool) { return nil, false }
