package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/node-headers/node-headers-cli/cli/context"
)

const (
	DefaultConfName = ".node-headers.yml"
	SourceRootEnv   = "NODE_HEADERS_SOURCE_ROOT"

	defaultDistDir        = "dist"
	defaultStagingDirName = "node-headers"
	defaultEngineDest     = "deps"
)

const (
	suffixesSection   = "suffixes"
	dirsSection       = "dirs"
	filesSection      = "files"
	engineDirsSection = "engine-dirs"
	engineDestSection = "engine-dest"
	tarballsSection   = "tarballs"
	nodeDirSection    = "node-dir"
	engineDirSection  = "engine-dir"
	distDirSection    = "dist-dir"
	stagingDirSection = "staging-dir"
)

var (
	defaultNodeDir   = filepath.Join("vendor", "node")
	defaultEngineDir = filepath.Join(
		"vendor", "brightray", "vendor", "download", "libchromiumcontent", "src",
	)

	defaultSuffixes = []string{
		".h",
		".gypi",
	}

	defaultDirs = []string{
		"src",
		"deps/http_parser",
		"deps/zlib",
		"deps/uv",
		"deps/npm",
		"deps/mdb_v8",
	}

	defaultFiles = []string{
		"common.gypi",
		"config.gypi",
	}

	defaultEngineDirs = []string{
		"v8",
	}

	defaultTarballs = []string{
		"node-{{ .Version }}",
		"iojs-{{ .Version }}",
		"iojs-{{ .Version }}-headers",
	}
)

// FillCtx fills headers context: detects source root,
// reads headers config and sets all paths and selection rules
func FillCtx(ctx *context.Ctx) error {
	var err error

	if ctx.Headers.SourceRoot == "" {
		ctx.Headers.SourceRoot = os.Getenv(SourceRootEnv)
	}

	if ctx.Headers.SourceRoot == "" {
		ctx.Headers.SourceRoot, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("Failed to get current directory: %s", err)
		}
	}

	ctx.Headers.SourceRoot, err = filepath.Abs(ctx.Headers.SourceRoot)
	if err != nil {
		return fmt.Errorf("Failed to get absolute path for %s: %s", ctx.Headers.SourceRoot, err)
	}

	if fileInfo, err := os.Stat(ctx.Headers.SourceRoot); err != nil {
		return fmt.Errorf("Unable to use source root: %s", err)
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("Source root %s is not a directory", ctx.Headers.SourceRoot)
	}

	conf, err := readHeadersConf(ctx)
	if err != nil {
		return err
	}

	if err := setHeadersPaths(ctx, conf); err != nil {
		return err
	}

	if err := setSelection(ctx, conf); err != nil {
		return err
	}

	return nil
}
