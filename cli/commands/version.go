package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/node-headers/node-headers-cli/cli/version"
)

func init() {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show the node-headers CLI version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(version.BuildCliVersionString())
		},
	}

	rootCmd.AddCommand(versionCmd)
}
