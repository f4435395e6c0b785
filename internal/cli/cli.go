// Package cli implements the scg-expected demo command line.
package cli

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/next-trace/scg-expected/expected"
)

// debugEnv enables debug logging when set to anything but "", "0" or "false".
const debugEnv = "SCG_DEBUG"

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Command execution failed.")
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "scg-expected",
		Short:         "Demonstrates the expected result containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(debug || debugFromEnv(os.Getenv(debugEnv)))
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(rootOfCmd(), versionCmd())
	if c := errnoCmd(); c != nil {
		rootCmd.AddCommand(c)
	}

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	return rootCmd
}

func debugFromEnv(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false":
		return false
	default:
		return true
	}
}

// setupLogging configures the global logger and hands it to the expected package.
func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !term.IsTerminal(int(os.Stderr.Fd())),
	})

	expected.SetLogger(log.Logger)
}
