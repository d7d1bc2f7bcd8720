package commands

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/node-headers/node-headers-cli/cli/context"
)

var (
	ctx     context.Ctx
	rootCmd = &cobra.Command{
		Use:   "node-headers",
		Short: "Pack Node headers into distributable tarballs",
		Long: `Pack Node headers into distributable tarballs

Header files of the vendored Node source tree and V8 headers
of the vendored Chromium source tree are collected into the staging
directory. Then the staging directory is packed into node-VERSION.tar.gz,
iojs-VERSION.tar.gz and iojs-VERSION-headers.tar.gz tarballs
placed in the dist directory`,
		Args: cobra.NoArgs,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setLogLevel()
		},

		Run: func(cmd *cobra.Command, args []string) {
			err := runPackCommand(cmd, args)
			if err != nil {
				log.Fatalf("%s", err)
			}
		},
	}
)

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	configureFlags(rootCmd)

	rootCmd.PersistentFlags().BoolVar(&ctx.Cli.Verbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&ctx.Cli.Quiet, "quiet", false, "Show only errors")
	rootCmd.PersistentFlags().BoolVar(&ctx.Cli.Debug, "debug", false, "Debug mode")

	addPathsFlags(rootCmd)

	rootCmd.Flags().StringVarP(&ctx.Headers.Version, "version", "v", "", versionUsage)
	if err := rootCmd.MarkFlagRequired("version"); err != nil {
		panic(err)
	}

	initLogger()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%s", err)
	}
}

func initLogger() {
	log.SetHandler(cli.Default)
}

func setLogLevel() {
	if ctx.Cli.Debug {
		ctx.Cli.Verbose = true
	}

	if ctx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if ctx.Cli.Quiet {
		log.SetLevel(log.ErrorLevel)
	}
}
