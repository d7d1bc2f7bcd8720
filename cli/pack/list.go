package pack

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/node-headers/node-headers-cli/cli/common"
	"github.com/node-headers/node-headers-cli/cli/context"
)

// List writes paths of the files that would be placed in the staging
// directory. Nothing is written to the file system.
// If ctx.Cli.ShowDiff is set, the unified diff between current staging
// directory content and the collected files is written instead
func List(ctx *context.Ctx, w io.Writer) error {
	if err := checkPaths(ctx); err != nil {
		return err
	}

	headerFiles, err := getHeaderFiles(ctx)
	if err != nil {
		return fmt.Errorf("Failed to collect headers: %s", err)
	}

	planned := getDestPaths(headerFiles)

	if !ctx.Cli.ShowDiff {
		for _, path := range planned {
			if _, err := fmt.Fprintln(w, path); err != nil {
				return err
			}
		}

		return nil
	}

	staged, err := getStagedPaths(ctx)
	if err != nil {
		return err
	}

	diff, err := diffPaths(staged, planned, ctx.Headers.StagingDir)
	if err != nil {
		return err
	}

	if diff == "" {
		log.Infof("Staging directory is up to date")
		return nil
	}

	_, err = io.WriteString(w, diff)
	return err
}

func getDestPaths(headerFiles []headerFile) []string {
	seen := make(map[string]bool, len(headerFiles))
	paths := make([]string, 0, len(headerFiles))

	for _, file := range headerFiles {
		path := filepath.ToSlash(file.destPath)
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	sort.Strings(paths)
	return paths
}

func getStagedPaths(ctx *context.Ctx) ([]string, error) {
	if _, err := os.Stat(ctx.Headers.StagingDir); os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("Unable to use staging directory: %s", err)
	}

	staged, err := common.ListFiles(ctx.Headers.StagingDir)
	if err != nil {
		return nil, fmt.Errorf("Failed to list staging directory: %s", err)
	}

	return staged, nil
}

func diffPaths(staged []string, planned []string, stagingDir string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        toLines(staged),
		B:        toLines(planned),
		FromFile: stagingDir,
		ToFile:   "collected",
		Context:  0,
	}

	return difflib.GetUnifiedDiffString(diff)
}

func toLines(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}

	return difflib.SplitLines(strings.Join(paths, "\n"))
}
