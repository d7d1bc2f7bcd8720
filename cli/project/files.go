package project

import (
	"fmt"
	"path/filepath"

	"github.com/node-headers/node-headers-cli/cli/common"
	"github.com/node-headers/node-headers-cli/cli/context"
)

type PathOpts struct {
	SpecifiedPath   string
	ConfSectionName string
	DefaultPath     string
	BasePath        string
}

// getPath returns the absolute path
// Specified path has the highest priority, then the path from the config
// section is used and the default path is used at last.
// Relative config and default paths are joined with the base path,
// relative specified path is resolved against the working directory
func getPath(conf HeadersConf, opts PathOpts) (string, error) {
	var path string
	var err error

	if opts.SpecifiedPath != "" {
		if path, err = filepath.Abs(opts.SpecifiedPath); err != nil {
			return "", fmt.Errorf("Failed to get absolute path: %s", err)
		}
		return path, nil
	} else if conf == nil || opts.ConfSectionName == "" {
		path = opts.DefaultPath
	} else if pathFromConf, found := conf[opts.ConfSectionName]; found {
		var ok bool
		if path, ok = pathFromConf.(string); !ok {
			return "", fmt.Errorf("%s config value should be string", opts.ConfSectionName)
		}
	} else {
		path = opts.DefaultPath
	}

	if path == "" {
		return "", nil
	}

	if opts.BasePath != "" && !filepath.IsAbs(path) {
		path = filepath.Join(opts.BasePath, path)
	}

	if path, err = filepath.Abs(path); err != nil {
		return "", fmt.Errorf("Failed to get absolute path: %s", err)
	}

	return path, nil
}

// setHeadersPaths sets Node, engine, dist and staging directories.
// Empty engine directory means that engine headers aren't collected
func setHeadersPaths(ctx *context.Ctx, conf HeadersConf) error {
	var err error

	sourceRoot := ctx.Headers.SourceRoot

	ctx.Headers.NodeDir, err = getPath(conf, PathOpts{
		SpecifiedPath:   ctx.Headers.NodeDir,
		ConfSectionName: nodeDirSection,
		DefaultPath:     defaultNodeDir,
		BasePath:        sourceRoot,
	})
	if err != nil {
		return fmt.Errorf("Failed to detect Node directory: %s", err)
	}

	ctx.Headers.EngineDir, err = getPath(conf, PathOpts{
		SpecifiedPath:   ctx.Headers.EngineDir,
		ConfSectionName: engineDirSection,
		DefaultPath:     defaultEngineDir,
		BasePath:        sourceRoot,
	})
	if err != nil {
		return fmt.Errorf("Failed to detect engine directory: %s", err)
	}

	ctx.Headers.DistDir, err = getPath(conf, PathOpts{
		SpecifiedPath:   ctx.Headers.DistDir,
		ConfSectionName: distDirSection,
		DefaultPath:     defaultDistDir,
		BasePath:        sourceRoot,
	})
	if err != nil {
		return fmt.Errorf("Failed to detect dist directory: %s", err)
	}

	ctx.Headers.StagingDir, err = getPath(conf, PathOpts{
		SpecifiedPath:   ctx.Headers.StagingDir,
		ConfSectionName: stagingDirSection,
		DefaultPath:     defaultStagingDirName,
		BasePath:        ctx.Headers.DistDir,
	})
	if err != nil {
		return fmt.Errorf("Failed to detect staging directory: %s", err)
	}

	if ctx.Headers.NodeDir == "" || ctx.Headers.DistDir == "" || ctx.Headers.StagingDir == "" {
		return fmt.Errorf("Node, dist and staging directories can't be empty")
	}

	if ctx.Headers.StagingDir == ctx.Headers.DistDir {
		return fmt.Errorf("Staging directory can't be the same as dist directory")
	}

	return nil
}

// CheckStagingDir checks that removing the staging directory
// can't remove Node or engine sources or the dist directory with
// earlier tarballs
func CheckStagingDir(ctx *context.Ctx) error {
	sourceDirs := []string{ctx.Headers.NodeDir}
	if ctx.Headers.EngineDir != "" {
		sourceDirs = append(sourceDirs, ctx.Headers.EngineDir)
	}

	for _, sourceDir := range sourceDirs {
		sourceInStaging, err := common.IsSubDir(sourceDir, ctx.Headers.StagingDir)
		if err != nil {
			return err
		}

		if sourceInStaging {
			return fmt.Errorf(
				"Source directory %s is placed in the staging directory %s",
				sourceDir, ctx.Headers.StagingDir,
			)
		}
	}

	distInStaging, err := common.IsSubDir(ctx.Headers.DistDir, ctx.Headers.StagingDir)
	if err != nil {
		return err
	}

	if distInStaging {
		return fmt.Errorf(
			"Dist directory %s is placed in the staging directory %s",
			ctx.Headers.DistDir, ctx.Headers.StagingDir,
		)
	}

	return nil
}
