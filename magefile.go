// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// can be overwritten by GOEXE
var goExe = "go"

// can be overwritten by CLIEXE
var cliExe = "node-headers"

var packageName = "github.com/node-headers/node-headers-cli/cli"
var packagePath = "./cli"

func getBuildEnv() map[string]string {
	var gitTag string
	var gitCommit string

	if _, err := exec.LookPath("git"); err == nil {
		gitTag, _ = sh.Output("git", "describe", "--tags")
		gitCommit, _ = sh.Output("git", "rev-parse", "--short", "HEAD")
	}

	versionLabel := os.Getenv("VERSION_LABEL")

	return map[string]string{
		"PACKAGE":       packageName,
		"GIT_TAG":       gitTag,
		"GIT_COMMIT":    gitCommit,
		"VERSION_LABEL": versionLabel,
	}
}

var ldflags = []string{
	"-s", "-w",
	"-X ${PACKAGE}/version.gitTag=${GIT_TAG}",
	"-X ${PACKAGE}/version.gitCommit=${GIT_COMMIT}",
	"-X ${PACKAGE}/version.versionLabel=${VERSION_LABEL}",
}
var ldflagsStr = strings.Join(ldflags, " ")

func init() {
	if specifiedGoExe := os.Getenv("GOEXE"); specifiedGoExe != "" {
		goExe = specifiedGoExe
	}

	if specifiedCliExe := os.Getenv("CLIEXE"); specifiedCliExe != "" {
		cliExe = specifiedCliExe
	}

	os.Setenv("GO111MODULE", "on")
}

// Run go vet
func Lint() error {
	fmt.Println("Running go vet...")
	return sh.RunV(goExe, "vet", "./cli/...")
}

// Run unit tests
func Unit() error {
	fmt.Println("Running unit tests...")
	if mg.Verbose() {
		return sh.RunV(goExe, "test", "-v", "./cli/...")
	}

	return sh.RunV(goExe, "test", "./cli/...")
}

// Run all tests
func Test() {
	mg.SerialDeps(Lint, Unit)
}

// Build node-headers executable
func Build() error {
	fmt.Println("Building...")
	return sh.RunWith(
		getBuildEnv(), goExe, "build",
		"-o", cliExe,
		"-ldflags", ldflagsStr,
		packagePath,
	)
}

// Pack headers of the source root specified by NODE_HEADERS_SOURCE_ROOT.
// Node version is taken from NODE_VERSION
func Headers() error {
	mg.Deps(Build)

	nodeVersion := os.Getenv("NODE_VERSION")
	if nodeVersion == "" {
		return fmt.Errorf("Please, specify NODE_VERSION")
	}

	fmt.Printf("Packing Node %s headers...\n", nodeVersion)
	return sh.RunV(fmt.Sprintf("./%s", cliExe), "--version", nodeVersion)
}

// Clean up after yourself
func Clean() {
	fmt.Println("Cleaning...")
	os.RemoveAll(cliExe)
}
