package pack

import (
	"fmt"

	"github.com/apex/log"
	"github.com/fatih/color"

	"github.com/node-headers/node-headers-cli/cli/common"
	"github.com/node-headers/node-headers-cli/cli/context"
)

// packTgz packs the staging directory into the tarball per label.
// All tarballs have the same content, only the root directory name differs
func packTgz(ctx *context.Ctx, labels []string) error {
	ctx.Headers.ResTarballPaths = nil

	for _, label := range labels {
		tarballPath := getTarballPath(ctx, label)

		err := common.RunFunctionWithSpinner(func() error {
			return common.WriteTgzArchive(ctx.Headers.StagingDir, tarballPath, label)
		}, fmt.Sprintf("Creating %s...", label))

		if err != nil {
			return fmt.Errorf("Failed to create TGZ archive %s: %s", tarballPath, err)
		}

		ctx.Headers.ResTarballPaths = append(ctx.Headers.ResTarballPaths, tarballPath)

		log.Infof("Created header tarball: %s", color.New(color.FgGreen).Sprint(tarballPath))
	}

	return nil
}
