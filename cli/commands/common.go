package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func configureFlags(cmd *cobra.Command) {
	cmd.Flags().SortFlags = false
}

// normalizeFlagName allows to use underscores in flag names,
// e.g. --source_root is the same as --source-root
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func addPathsFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&ctx.Headers.SourceRoot, "source-root", "", sourceRootUsage)
	cmd.PersistentFlags().StringVar(&ctx.Headers.NodeDir, "node-dir", "", nodeDirUsage)
	cmd.PersistentFlags().StringVar(&ctx.Headers.EngineDir, "engine-dir", "", engineDirUsage)
	cmd.PersistentFlags().StringVar(&ctx.Headers.DistDir, "dist-dir", "", distDirUsage)
	cmd.PersistentFlags().StringVar(&ctx.Cli.ConfigPath, "config", "", configUsage)
}
