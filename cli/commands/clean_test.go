package commands

import (
	"bytes"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/node-headers/node-headers-cli/cli/context"
	"github.com/node-headers/node-headers-cli/cli/project"
)

const (
	fatalErrorEnv    = "NODE_HEADERS_TEST_FATAL_ERROR"
	fatalErrorDirEnv = "NODE_HEADERS_TEST_FATAL_ERROR_DIR"
)

// resetCtx clears values left by the previous command run.
// Flags stay bound to the ctx fields
func resetCtx() {
	ctx = context.Ctx{}
}

func TestRunCleanCmd(t *testing.T) {
	assert := assert.New(t)
	defer resetCtx()

	var err error

	sourceRoot := createNodeDir(t)
	defer os.RemoveAll(sourceRoot)

	nodeHeader := filepath.Join(sourceRoot, "vendor", "node", "src", "node.h")
	stagingHeader := filepath.Join(sourceRoot, "dist", "node-headers", "src", "node.h")
	tarballPath := filepath.Join(sourceRoot, "dist", "node-1.0.0.tar.gz")

	require.NoError(t, os.MkdirAll(filepath.Dir(stagingHeader), 0755))
	require.NoError(t, ioutil.WriteFile(stagingHeader, []byte("#define NODE"), 0644))
	require.NoError(t, ioutil.WriteFile(tarballPath, []byte("tarball"), 0644))

	// staging directory contains sources
	confPath := filepath.Join(sourceRoot, project.DefaultConfName)
	require.NoError(t, ioutil.WriteFile(confPath, []byte("staging-dir: ../vendor\n"), 0644))

	resetCtx()
	ctx.Headers.SourceRoot = sourceRoot

	err = runCleanCmd(nil, nil)
	assert.NotNil(err)
	assert.Contains(err.Error(), "is placed in the staging directory")
	assert.FileExists(nodeHeader)
	assert.FileExists(stagingHeader)

	// default staging directory
	require.NoError(t, os.Remove(confPath))

	resetCtx()
	ctx.Headers.SourceRoot = sourceRoot

	assert.Nil(runCleanCmd(nil, nil))
	assert.NoDirExists(filepath.Join(sourceRoot, "dist", "node-headers"))
	assert.FileExists(tarballPath)
	assert.FileExists(nodeHeader)

	// staging directory is already removed
	resetCtx()
	ctx.Headers.SourceRoot = sourceRoot

	assert.Nil(runCleanCmd(nil, nil))
}

func TestCleanCmdFatalError(t *testing.T) {
	if os.Getenv(fatalErrorEnv) == "1" {
		rootCmd.SetArgs([]string{"clean", "--source-root", os.Getenv(fatalErrorDirEnv)})
		Execute()
		return
	}

	assert := assert.New(t)

	dir, err := ioutil.TempDir("", "clean")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	// percent sign in the path shouldn't break the error message
	sourceRoot := filepath.Join(dir, "100%done")

	cmd := exec.Command(os.Args[0], "-test.run=^TestCleanCmdFatalError$")
	cmd.Env = append(os.Environ(), fatalErrorEnv+"=1", fatalErrorDirEnv+"="+sourceRoot)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "%v", err)
	assert.Equal(1, exitErr.ExitCode())

	assert.Contains(stderr.String(), "Unable to use source root")
	assert.Contains(stderr.String(), sourceRoot)
	assert.NotContains(stderr.String(), "%!")
}
