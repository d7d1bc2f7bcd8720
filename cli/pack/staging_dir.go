package pack

import (
	"fmt"

	"github.com/apex/log"

	"github.com/node-headers/node-headers-cli/cli/common"
	"github.com/node-headers/node-headers-cli/cli/context"
)

// staging directory structure:
// <source-root>/dist/         <- ctx.Headers.DistDir
//   node-headers/             <- ctx.Headers.StagingDir (recreated on each run)
//     src/...                 <- Node headers
//     deps/uv/...
//     deps/v8/...             <- engine headers (selection.EngineDest)
//     common.gypi
//   node-<version>.tar.gz     <- result tarballs

func initStagingDir(ctx *context.Ctx) error {
	log.Debugf("Recreating staging directory...")

	if err := common.RecreateDir(ctx.Headers.StagingDir); err != nil {
		return fmt.Errorf("Failed to prepare staging directory: %s", err)
	}

	return nil
}
