// Package expected provides move-only containers for the outcome of a fallible operation.
//
// Expected[T, E] holds either a success value T or an error payload E, MaybeError[E] holds
// either nothing or an error payload E, and Unexpected[E] is the single-use carrier used to
// build the error branch of either one. E must implement contract.Error.
//
// Every holder yields its payload at most once. Reading a consumed or moved-from holder
// returns ErrMovedOut; reading the branch a holder does not hold returns a *WrongBranchError
// (errors.Is(err, ErrWrongBranch)) and leaves the holder untouched. Both are programmer
// errors, distinct from the domain error carried in E.
//
// Holders are used through pointers. Move transfers the payload into a fresh holder and
// leaves the source consumed; copying a holder by value is flagged by go vet.
//
// Typical use:
//
//	func parse(s string) *expected.Expected[int, *scgerr.CustomError] {
//		n, err := strconv.Atoi(s)
//		if err != nil {
//			return expected.Failure[int](expected.Unexpect(scgerr.Wrap(err, "not a number", nil)))
//		}
//		return expected.Success[int, *scgerr.CustomError](n)
//	}
//
//	func double(s string) *expected.Expected[int, *scgerr.CustomError] {
//		n, fwd := expected.Bind[int](parse(s))
//		if fwd != nil {
//			return fwd
//		}
//		return expected.Success[int, *scgerr.CustomError](n * 2)
//	}
package expected
