package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/next-trace/scg-expected/contract"
	scgerr "github.com/next-trace/scg-expected/error"
	"github.com/next-trace/scg-expected/expected"
)

// NegativeNumberError is returned when asked for the root of a negative number.
type NegativeNumberError struct {
	Num int
}

var _ contract.Error = NegativeNumberError{}

func (e NegativeNumberError) Error() string   { return e.Display() }
func (e NegativeNumberError) Display() string { return "Can not take root of negative number!" }

func (e NegativeNumberError) Raise() {
	scgerr.New(e.Display(), scgerr.WithCause(e), scgerr.WithContextKV("num", e.Num)).Raise()
}

// Root returns the integer square root of num.
func Root(num int) *expected.Expected[int, NegativeNumberError] {
	if num < 0 {
		return expected.Failure[int](expected.Unexpect(NegativeNumberError{Num: num}))
	}

	return expected.Success[int, NegativeNumberError](int(math.Sqrt(float64(num))))
}

// parseNumber turns the argument into an int, forwarding strconv failures as payloads.
func parseNumber(arg string) *expected.Expected[int, contract.Error] {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return expected.FromError[int, contract.Error](scgerr.Wrap(err, fmt.Sprintf("%q is not a number", arg), nil))
	}

	return expected.Success[int, contract.Error](n)
}

// rootOf parses arg and takes its root, forwarding either failure as a contract.Error.
func rootOf(arg string) *expected.Expected[int, contract.Error] {
	num, fwd := expected.Bind[int](parseNumber(arg))
	if fwd != nil {
		return fwd
	}

	res := Root(num)
	log.Debug().Int("num", num).Bool("ok", res.IsOk()).Msg("computed root")

	if !res.IsOk() {
		return expected.FromError[int, contract.Error](res.MustUnpackError())
	}

	return expected.Success[int, contract.Error](res.MustUnpackOk())
}

func rootOfCmd() *cobra.Command {
	var raise bool

	cmd := &cobra.Command{
		Use:   "root [number]",
		Short: "Take the integer square root of a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := rootOf(args[0])

			if raise {
				return raiseRoot(cmd, res)
			}

			if res.IsOk() {
				cmd.Println("The root of your number is:", res.MustUnpackOk())
				return nil
			}

			e := res.MustUnpackError()
			cmd.Println("Failed to take root of your number:", e.Display())

			return e
		},
	}

	cmd.Flags().BoolVar(&raise, "raise", false, "Convert the error branch into a raised error and recover it")

	return cmd
}

// raiseRoot exercises the raise bridge: the error branch panics and is recovered here.
func raiseRoot(cmd *cobra.Command, res *expected.Expected[int, contract.Error]) error {
	var misuse error

	raised := scgerr.Recover(func() {
		misuse = res.RaiseIfError()
	})
	if misuse != nil {
		return misuse
	}

	if raised != nil {
		var x scgerr.Exception
		if errors.As(raised, &x) {
			cmd.Println("Raised:", x.Raised().Display())
		}

		return raised
	}

	cmd.Println("The root of your number is:", res.MustUnpackOk())

	return nil
}
