package pack

import (
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/node-headers/node-headers-cli/cli/common"
	"github.com/node-headers/node-headers-cli/cli/context"
	"github.com/node-headers/node-headers-cli/cli/project"
)

// Run collects headers into the staging directory
// and packs it into header tarballs
func Run(ctx *context.Ctx) error {
	if err := checkCtx(ctx); err != nil {
		return project.InternalError("Headers context check failed: %s", err)
	}

	if err := checkPaths(ctx); err != nil {
		return err
	}

	labels, err := getTarballLabels(ctx)
	if err != nil {
		return err
	}

	log.Infof("Packing Node %s headers from %s", ctx.Headers.Version, ctx.Headers.NodeDir)

	if err := os.MkdirAll(ctx.Headers.DistDir, 0755); err != nil {
		return fmt.Errorf("Failed to create dist directory %s: %s", ctx.Headers.DistDir, err)
	}

	log.Infof("Staging directory is set to %s", ctx.Headers.StagingDir)
	if err := initStagingDir(ctx); err != nil {
		return err
	}

	copiedCount, err := collectHeaders(ctx)
	if err != nil {
		return fmt.Errorf("Failed to collect headers: %s", err)
	}

	log.Infof("Collected %d header files", copiedCount)

	if err := packTgz(ctx, labels); err != nil {
		return err
	}

	log.Infof("Headers were successfully packed")

	return nil
}

func checkCtx(ctx *context.Ctx) error {
	if ctx.Headers.Version == "" {
		return fmt.Errorf("Version is missed")
	}

	if ctx.Headers.SourceRoot == "" {
		return fmt.Errorf("SourceRoot is missed")
	}

	if ctx.Headers.NodeDir == "" {
		return fmt.Errorf("NodeDir is missed")
	}

	if ctx.Headers.DistDir == "" {
		return fmt.Errorf("DistDir is missed")
	}

	if ctx.Headers.StagingDir == "" {
		return fmt.Errorf("StagingDir is missed")
	}

	if len(ctx.Headers.Selection.Suffixes) == 0 {
		return fmt.Errorf("Selection.Suffixes is missed")
	}

	if len(ctx.Headers.TarballTemplates) == 0 {
		return fmt.Errorf("TarballTemplates is missed")
	}

	return nil
}

// checkPaths checks that staging directory recreation can't
// remove sources or tarballs and collected files can't be collected again
func checkPaths(ctx *context.Ctx) error {
	if err := project.CheckStagingDir(ctx); err != nil {
		return err
	}

	for _, walkDir := range getWalkDirs(ctx) {
		stagingInWalkDir, err := common.IsSubDir(ctx.Headers.StagingDir, walkDir.path)
		if err != nil {
			return err
		}

		if stagingInWalkDir {
			return fmt.Errorf(
				"Staging directory %s is placed in the collected directory %s",
				ctx.Headers.StagingDir, walkDir.path,
			)
		}
	}

	return nil
}
