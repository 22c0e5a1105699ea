// Version command for the topotab CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/topotab/pkg/topotab"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the topotab version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "topotab v"+topotab.Version)
	},
}
