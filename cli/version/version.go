package version

import (
	"fmt"
	"runtime"
	"strings"

	goVersion "github.com/hashicorp/go-version"

	"github.com/node-headers/node-headers-cli/cli/common"
	"github.com/node-headers/node-headers-cli/cli/templates"
)

var (
	gitTag       string
	gitCommit    string
	versionLabel string
)

const (
	unknownVersion  = "<unknown>"
	cliVersionTitle = "Node headers CLI"
)

// BuildCliVersionString returns the CLI build information.
// gitTag, gitCommit and versionLabel are set on build via ldflags
func BuildCliVersionString() string {
	return buildVersionString(gitTag, gitCommit, versionLabel)
}

func buildVersionString(tag string, commit string, label string) string {
	var version string

	if tag == "" {
		version = unknownVersion
	} else {
		if normalizedVersion, err := goVersion.NewVersion(tag); err != nil {
			version = tag
		} else {
			version = strings.Join(common.IntsToStrings(normalizedVersion.Segments()), ".")
		}

		if label != "" {
			version = fmt.Sprintf("%s/%s", version, label)
		}
	}

	if commit == "" {
		commit = unknownVersion
	}

	return formatVersion(cliVersionTmpl, map[string]string{
		"Title":   cliVersionTitle,
		"Version": version,
		"OS":      runtime.GOOS,
		"Arch":    runtime.GOARCH,
		"Commit":  commit,
	})
}

func formatVersion(template string, templateArgs map[string]string) string {
	versionMsg, err := templates.GetTemplatedStr(&template, templateArgs)

	if err != nil {
		panic(err)
	}

	return versionMsg
}

var (
	cliVersionTmpl = `{{ .Title }}
 Version:	{{ .Version }}
 OS/Arch: 	{{ .OS }}/{{ .Arch }}
 Git commit:	{{ .Commit }}
`
)
