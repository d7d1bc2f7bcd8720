package commands

import (
	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/node-headers/node-headers-cli/cli/project"
)

func init() {
	var cleanCmd = &cobra.Command{
		Use:   "clean",
		Short: "Remove headers staging directory",
		Long: `Remove headers staging directory

Tarballs placed in the dist directory are kept`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			err := runCleanCmd(cmd, args)
			if err != nil {
				log.Fatalf("%s", err)
			}
		},
	}

	rootCmd.AddCommand(cleanCmd)

	configureFlags(cleanCmd)
}

func runCleanCmd(cmd *cobra.Command, args []string) error {
	if err := project.FillCtx(&ctx); err != nil {
		return err
	}

	if err := project.RemoveStagingDir(&ctx); err != nil {
		return err
	}

	return nil
}
