package commands

import (
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/node-headers/node-headers-cli/cli/pack"
	"github.com/node-headers/node-headers-cli/cli/project"
)

func init() {
	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List header files to be packed",
		Long: `List header files to be packed

Paths are shown relative to the staging directory.
Nothing is written to the file system`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			err := runListCmd(cmd, args)
			if err != nil {
				log.Fatalf("%s", err)
			}
		},
	}

	rootCmd.AddCommand(listCmd)

	configureFlags(listCmd)

	listCmd.Flags().BoolVar(&ctx.Cli.ShowDiff, "diff", false, diffUsage)
}

func runListCmd(cmd *cobra.Command, args []string) error {
	if err := project.FillCtx(&ctx); err != nil {
		return err
	}

	if err := pack.List(&ctx, os.Stdout); err != nil {
		return err
	}

	return nil
}
