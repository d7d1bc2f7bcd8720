package common

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/otiai10/copy"
)

// IsSubDir checks if directory is subdirectory of other.
// Symlinks in the existing parts of both paths are resolved
func IsSubDir(subdir string, dir string) (bool, error) {
	subdirReal, err := resolvePath(subdir)
	if err != nil {
		return false, err
	}

	dirReal, err := resolvePath(dir)
	if err != nil {
		return false, err
	}

	if dirReal == subdirReal {
		return true, nil
	}

	return strings.HasPrefix(subdirReal, fmt.Sprintf("%s%c", dirReal, filepath.Separator)), nil
}

// resolvePath returns the absolute path with the longest existing
// prefix resolved by filepath.EvalSymlinks
func resolvePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	existingPath := absPath
	var missedParts []string

	for {
		if _, err := os.Stat(existingPath); err == nil {
			break
		}

		parentPath := filepath.Dir(existingPath)
		if parentPath == existingPath {
			return absPath, nil
		}

		missedParts = append([]string{filepath.Base(existingPath)}, missedParts...)
		existingPath = parentPath
	}

	realPath, err := filepath.EvalSymlinks(existingPath)
	if err != nil {
		return "", err
	}

	return filepath.Join(append([]string{realPath}, missedParts...)...), nil
}

// RecreateDir removes anything placed at the specified path
// (file, directory or broken symlink) and creates an empty directory
// with all missed parents
func RecreateDir(dirPath string) error {
	if _, err := os.Lstat(dirPath); err == nil {
		if err := os.RemoveAll(dirPath); err != nil {
			return fmt.Errorf("Failed to remove %s: %s", dirPath, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("Unable to use %s: %s", dirPath, err)
	}

	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("Failed to create %s: %s", dirPath, err)
	}

	return nil
}

// CopyFile copies file content, permissions and times to destPath.
// Missed parent directories are created.
// Symlinks are followed
func CopyFile(srcPath string, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return err
	}

	// copy.Deep resolves relative links against the working directory
	realSrcPath, err := filepath.EvalSymlinks(srcPath)
	if err != nil {
		return err
	}

	if err := copy.Copy(realSrcPath, destPath, copy.Options{PreserveTimes: true}); err != nil {
		return err
	}

	return nil
}

// ListFiles returns sorted slash-separated paths of all non-directory
// entries under dirPath, relative to dirPath
func ListFiles(dirPath string) ([]string, error) {
	var files []string

	err := filepath.Walk(dirPath, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if fileInfo.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(dirPath, filePath)
		if err != nil {
			return err
		}

		files = append(files, filepath.ToSlash(relPath))
		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// GetFileContentBytes returns file content
func GetFileContentBytes(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ioutil.ReadAll(file)
}

func writeFileToWriter(filePath string, writer io.Writer) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	// copy file data into tar writer
	if _, err := io.Copy(writer, file); err != nil {
		return err
	}

	return nil
}
