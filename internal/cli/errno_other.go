//go:build !unix

package cli

import "github.com/spf13/cobra"

// The errno catalogue is only available on unix platforms.
func errnoCmd() *cobra.Command { return nil }
