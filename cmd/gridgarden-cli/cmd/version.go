package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.1.0" // Set at build time with -ldflags "-X github.com/gridgarden/landing/cmd/gridgarden-cli/cmd.version=..."

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of gridgarden-cli",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gridgarden-cli v%s\n", version)
		},
	}
}
