package common

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecreateDir(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	dir, err := ioutil.TempDir("", "files")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	var files []string

	// directory doesn't exist
	stagingDir := filepath.Join(dir, "dist", "node-headers")
	assert.Nil(RecreateDir(stagingDir))
	assert.DirExists(stagingDir)

	// directory with stale files
	writeTestFile(t, filepath.Join(stagingDir, "old.h"), "old")
	writeTestFile(t, filepath.Join(stagingDir, "src", "stale.h"), "stale")
	assert.Nil(RecreateDir(stagingDir))
	files, err = ListFiles(stagingDir)
	assert.Nil(err)
	assert.Len(files, 0)

	// regular file
	filePath := filepath.Join(dir, "file")
	writeTestFile(t, filePath, "content")
	assert.Nil(RecreateDir(filePath))
	assert.DirExists(filePath)

	// broken symlink
	linkPath := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(filepath.Join(dir, "missed"), linkPath))
	assert.Nil(RecreateDir(linkPath))
	fileInfo, err := os.Lstat(linkPath)
	assert.Nil(err)
	assert.True(fileInfo.IsDir())
}

func TestCopyFile(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	dir, err := ioutil.TempDir("", "files")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	srcPath := filepath.Join(dir, "src", "node.h")
	writeTestFile(t, srcPath, "#define NODE")
	require.NoError(t, os.Chmod(srcPath, 0640))

	mtime := time.Date(2015, 9, 8, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(srcPath, mtime, mtime))

	destPath := filepath.Join(dir, "dest", "src", "node.h")
	assert.Nil(CopyFile(srcPath, destPath))

	content, err := ioutil.ReadFile(destPath)
	assert.Nil(err)
	assert.Equal("#define NODE", string(content))

	fileInfo, err := os.Stat(destPath)
	assert.Nil(err)
	assert.Equal(os.FileMode(0640), fileInfo.Mode().Perm())
	assert.True(mtime.Equal(fileInfo.ModTime()), fileInfo.ModTime().String())

	// relative symlink is followed
	linkPath := filepath.Join(dir, "src", "link.h")
	require.NoError(t, os.Symlink("node.h", linkPath))

	linkDestPath := filepath.Join(dir, "dest", "src", "link.h")
	assert.Nil(CopyFile(linkPath, linkDestPath))

	fileInfo, err = os.Lstat(linkDestPath)
	assert.Nil(err)
	assert.True(fileInfo.Mode().IsRegular())

	content, err = ioutil.ReadFile(linkDestPath)
	assert.Nil(err)
	assert.Equal("#define NODE", string(content))

	// source doesn't exist
	assert.NotNil(CopyFile(filepath.Join(dir, "missed.h"), filepath.Join(dir, "dest", "missed.h")))
}

func TestIsSubDir(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var isSubDir bool
	var err error

	isSubDir, err = IsSubDir("/root/dist/node-headers", "/root/dist")
	assert.Nil(err)
	assert.True(isSubDir)

	isSubDir, err = IsSubDir("/root/dist", "/root/dist")
	assert.Nil(err)
	assert.True(isSubDir)

	isSubDir, err = IsSubDir("/root/dist-old", "/root/dist")
	assert.Nil(err)
	assert.False(isSubDir)

	isSubDir, err = IsSubDir("/root", "/root/dist")
	assert.Nil(err)
	assert.False(isSubDir)
}

func TestIsSubDirResolvesSymlinks(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var isSubDir bool

	dir, err := ioutil.TempDir("", "files")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	nodeDir := filepath.Join(dir, "vendor", "node")
	require.NoError(t, os.MkdirAll(nodeDir, 0755))

	linkPath := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(filepath.Join(dir, "vendor"), linkPath))

	// staging directory reached through the symlink
	isSubDir, err = IsSubDir(nodeDir, filepath.Join(linkPath, "node"))
	assert.Nil(err)
	assert.True(isSubDir)

	isSubDir, err = IsSubDir(filepath.Join(nodeDir, "src"), linkPath)
	assert.Nil(err)
	assert.True(isSubDir)

	// missed parts of the path are kept as is
	isSubDir, err = IsSubDir(filepath.Join(linkPath, "missed", "staging"), filepath.Join(dir, "vendor"))
	assert.Nil(err)
	assert.True(isSubDir)

	isSubDir, err = IsSubDir(filepath.Join(dir, "dist"), linkPath)
	assert.Nil(err)
	assert.False(isSubDir)
}

func TestListFiles(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	dir, err := ioutil.TempDir("", "files")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	writeTestFile(t, filepath.Join(dir, "src", "node.h"), "")
	writeTestFile(t, filepath.Join(dir, "common.gypi"), "")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty"), 0755))

	files, err := ListFiles(dir)
	assert.Nil(err)
	assert.Equal([]string{"common.gypi", "src/node.h"}, files)
}
