// Version command for the discrete CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "v0.1.0"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the discrete version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "discrete", version)
		},
	}
}
