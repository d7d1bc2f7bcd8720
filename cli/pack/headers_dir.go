package pack

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"

	"github.com/node-headers/node-headers-cli/cli/common"
	"github.com/node-headers/node-headers-cli/cli/context"
)

// headerFile is a single file to be placed in the staging directory
type headerFile struct {
	srcPath string
	// path relative to the staging directory
	destPath string
}

type walkDir struct {
	path string
	// root is a directory the collected paths are relative to
	root string
	// destPrefix is prepended to the collected relative paths
	destPrefix string
}

func getWalkDirs(ctx *context.Ctx) []walkDir {
	selection := ctx.Headers.Selection

	var walkDirs []walkDir

	for _, dir := range selection.Dirs {
		walkDirs = append(walkDirs, walkDir{
			path: filepath.Join(ctx.Headers.NodeDir, dir),
			root: ctx.Headers.NodeDir,
		})
	}

	if ctx.Headers.EngineDir != "" {
		for _, dir := range selection.EngineDirs {
			walkDirs = append(walkDirs, walkDir{
				path:       filepath.Join(ctx.Headers.EngineDir, dir),
				root:       ctx.Headers.EngineDir,
				destPrefix: selection.EngineDest,
			})
		}
	}

	return walkDirs
}

// getHeaderFiles returns all files that should be placed
// in the staging directory. Node directories are walked first,
// then Node explicit files are added and engine directories are walked at last
func getHeaderFiles(ctx *context.Ctx) ([]headerFile, error) {
	var headerFiles []headerFile

	walkDirs := getWalkDirs(ctx)
	nodeWalkDirsCount := len(ctx.Headers.Selection.Dirs)

	for _, dir := range walkDirs[:nodeWalkDirsCount] {
		files, err := walkHeaders(dir, ctx.Headers.Selection.Suffixes)
		if err != nil {
			return nil, err
		}

		headerFiles = append(headerFiles, files...)
	}

	for _, file := range ctx.Headers.Selection.Files {
		srcPath := filepath.Join(ctx.Headers.NodeDir, file)
		if fileInfo, err := os.Stat(srcPath); err != nil {
			return nil, fmt.Errorf("Unable to use %s: %s", srcPath, err)
		} else if fileInfo.IsDir() {
			return nil, fmt.Errorf("%s is a directory", srcPath)
		}

		headerFiles = append(headerFiles, headerFile{
			srcPath:  srcPath,
			destPath: filepath.Clean(file),
		})
	}

	for _, dir := range walkDirs[nodeWalkDirsCount:] {
		files, err := walkHeaders(dir, ctx.Headers.Selection.Suffixes)
		if err != nil {
			return nil, err
		}

		headerFiles = append(headerFiles, files...)
	}

	warnDuplicates(headerFiles)

	return headerFiles, nil
}

// walkHeaders returns files from the directory that have one of the
// specified suffixes. Directory that doesn't exist is skipped.
// Symlinked directory is walked by its target, but collected paths
// are relative to the directory itself
func walkHeaders(dir walkDir, suffixes []string) ([]headerFile, error) {
	if _, err := os.Stat(dir.path); os.IsNotExist(err) {
		log.Warnf("Directory %s doesn't exist, skipping", dir.path)
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("Unable to use %s: %s", dir.path, err)
	}

	realDirPath, err := filepath.EvalSymlinks(dir.path)
	if err != nil {
		return nil, fmt.Errorf("Failed to resolve %s: %s", dir.path, err)
	}

	dirRelPath, err := filepath.Rel(dir.root, dir.path)
	if err != nil {
		return nil, err
	}

	var headerFiles []headerFile

	err = filepath.Walk(realDirPath, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if fileInfo.IsDir() || !isHeader(fileInfo.Name(), suffixes) {
			return nil
		}

		relPath, err := filepath.Rel(realDirPath, filePath)
		if err != nil {
			return err
		}

		headerFiles = append(headerFiles, headerFile{
			srcPath:  filePath,
			destPath: filepath.Join(dir.destPrefix, dirRelPath, relPath),
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	return headerFiles, nil
}

func isHeader(fileName string, suffixes []string) bool {
	return common.StringSliceContains(suffixes, filepath.Ext(fileName))
}

func warnDuplicates(headerFiles []headerFile) {
	srcByDest := make(map[string]string, len(headerFiles))

	for _, file := range headerFiles {
		if prevSrc, found := srcByDest[file.destPath]; found && prevSrc != file.srcPath {
			log.Warnf("%s overwrites %s in the staging directory", file.srcPath, prevSrc)
		}

		srcByDest[file.destPath] = file.srcPath
	}
}

// collectHeaders copies header files to the staging directory
// and returns the number of copied files
func collectHeaders(ctx *context.Ctx) (int, error) {
	headerFiles, err := getHeaderFiles(ctx)
	if err != nil {
		return 0, err
	}

	err = common.RunFunctionWithSpinner(func() error {
		for _, file := range headerFiles {
			destPath := filepath.Join(ctx.Headers.StagingDir, file.destPath)

			log.Debugf("Copying %s", file.destPath)
			if err := common.CopyFile(file.srcPath, destPath); err != nil {
				return fmt.Errorf("Failed to copy %s: %s", file.srcPath, err)
			}
		}

		return nil
	}, "Copying header files...")

	if err != nil {
		return 0, err
	}

	return len(headerFiles), nil
}
