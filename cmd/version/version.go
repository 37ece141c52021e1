// Package version holds build metadata and the version command
package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X xmlcsv/cmd/version.Version=...".
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
)

// String returns the one-line version banner.
func String() string {
	return fmt.Sprintf("xmlcsv %s (build %s)", Version, BuildDate)
}

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), String())
	},
}
