//go:build unix

package cli

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	scgerr "github.com/next-trace/scg-expected/error"
	"github.com/next-trace/scg-expected/expected"
)

func errnoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errno",
		Short: "Inspect the platform error-code catalogue",
	}

	cmd.AddCommand(errnoListCmd(), errnoShowCmd())

	return cmd
}

func errnoListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every platform error code",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Code", "Name", "Text"})
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAutoWrapText(false)
			table.SetRowLine(false)

			for _, n := range scgerr.Errnos() {
				table.Append([]string{strconv.Itoa(int(n)), n.Name(), n.String()})
			}

			table.Render()
		},
	}
}

// lookupErrno resolves a numeric code or a symbolic name.
func lookupErrno(arg string) *expected.Expected[scgerr.ErrnoError, *scgerr.CustomError] {
	if n, err := strconv.Atoi(arg); err == nil {
		code := scgerr.Errno(n)
		if code.Name() == "" {
			return expected.FromError[scgerr.ErrnoError](scgerr.Newf("unknown error code %d", n))
		}

		return expected.Success[scgerr.ErrnoError, *scgerr.CustomError](scgerr.NewErrnoError(code))
	}

	code, ok := scgerr.ParseErrno(arg)
	if !ok {
		return expected.FromError[scgerr.ErrnoError](scgerr.Newf("unknown error name %q", arg))
	}

	return expected.Success[scgerr.ErrnoError, *scgerr.CustomError](scgerr.NewErrnoError(code))
}

func errnoShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [code|name]",
		Short: "Show the text of one platform error code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookupErrno(args[0]).Get()
			if err != nil {
				return err
			}

			cmd.Printf("%s (%d): %s\n", e.Errnum().Name(), int(e.Errnum()), e.Display())

			return nil
		},
	}
}
