package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/node-headers/node-headers-cli/cli/pack"
	"github.com/node-headers/node-headers-cli/cli/project"
)

func runPackCommand(cmd *cobra.Command, args []string) error {
	ctx.Headers.Version = strings.TrimSpace(ctx.Headers.Version)
	if ctx.Headers.Version == "" {
		return fmt.Errorf("Version should be specified via --version")
	}

	if err := project.FillCtx(&ctx); err != nil {
		return err
	}

	if err := pack.Run(&ctx); err != nil {
		return err
	}

	return nil
}
