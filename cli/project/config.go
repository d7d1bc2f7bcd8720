package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apex/log"

	"github.com/node-headers/node-headers-cli/cli/common"
	"github.com/node-headers/node-headers-cli/cli/context"
)

// HeadersConf is a content of the headers config file
type HeadersConf map[string]interface{}

type selectionConf struct {
	context.Selection `mapstructure:",squash"`
	Tarballs          []string `mapstructure:"tarballs"`
}

var (
	knownConfSections = []string{
		suffixesSection,
		dirsSection,
		filesSection,
		engineDirsSection,
		engineDestSection,
		tarballsSection,
		nodeDirSection,
		engineDirSection,
		distDirSection,
		stagingDirSection,
	}
)

// readHeadersConf reads config specified by ctx.Cli.ConfigPath.
// If path isn't specified, the default config from the source root is used
// if it exists. Nil config is returned if there is no config to read
func readHeadersConf(ctx *context.Ctx) (HeadersConf, error) {
	confPath := ctx.Cli.ConfigPath

	if confPath == "" {
		defaultConfPath := filepath.Join(ctx.Headers.SourceRoot, DefaultConfName)
		if _, err := os.Stat(defaultConfPath); os.IsNotExist(err) {
			return nil, nil
		} else if err != nil {
			return nil, fmt.Errorf("Failed to use default config %s: %s", defaultConfPath, err)
		}

		confPath = defaultConfPath
	}

	log.Debugf("Using headers config %s", confPath)

	conf, err := common.ParseYmlFile(confPath)
	if err != nil {
		return nil, err
	}

	unknownSections := common.GetStringSlicesDifference(common.MapKeys(conf), knownConfSections)
	if len(unknownSections) > 0 {
		sort.Strings(unknownSections)
		return nil, fmt.Errorf(
			"Config %s contains unknown sections: %s", confPath, strings.Join(unknownSections, ", "),
		)
	}

	return conf, nil
}

// setSelection sets files selection rule and tarball templates
// Sections missed in config are set to the default values
func setSelection(ctx *context.Ctx, conf HeadersConf) error {
	var decoded selectionConf

	if conf != nil {
		if err := common.DecodeMap(conf, &decoded); err != nil {
			return fmt.Errorf("Failed to parse headers config: %s", err)
		}
	}

	selection := &ctx.Headers.Selection

	selection.Suffixes = getStringsSection(conf, suffixesSection, decoded.Suffixes, defaultSuffixes)
	selection.Dirs = getStringsSection(conf, dirsSection, decoded.Dirs, defaultDirs)
	selection.Files = getStringsSection(conf, filesSection, decoded.Files, defaultFiles)
	selection.EngineDirs = getStringsSection(conf, engineDirsSection, decoded.EngineDirs, defaultEngineDirs)

	if _, found := conf[engineDestSection]; found {
		selection.EngineDest = decoded.EngineDest
	} else {
		selection.EngineDest = defaultEngineDest
	}

	ctx.Headers.TarballTemplates = getStringsSection(conf, tarballsSection, decoded.Tarballs, defaultTarballs)

	return checkSelection(ctx)
}

func getStringsSection(conf HeadersConf, section string, value []string, defaultValue []string) []string {
	if _, found := conf[section]; found {
		return value
	}

	res := make([]string, len(defaultValue))
	copy(res, defaultValue)

	return res
}

func checkSelection(ctx *context.Ctx) error {
	selection := ctx.Headers.Selection

	if len(selection.Suffixes) == 0 {
		return fmt.Errorf("At least one file suffix should be specified")
	}

	for _, suffix := range selection.Suffixes {
		if !strings.HasPrefix(suffix, ".") || len(suffix) < 2 {
			return fmt.Errorf("Suffix %q should start with a dot", suffix)
		}
	}

	for _, paths := range [][]string{selection.Dirs, selection.Files, selection.EngineDirs} {
		for _, path := range paths {
			if err := checkRelPath(path); err != nil {
				return err
			}
		}
	}

	if selection.EngineDest != "" {
		if err := checkRelPath(selection.EngineDest); err != nil {
			return err
		}
	}

	if len(ctx.Headers.TarballTemplates) == 0 {
		return fmt.Errorf("At least one tarball name template should be specified")
	}

	return nil
}

func checkRelPath(path string) error {
	if path == "" {
		return fmt.Errorf("Empty path is specified")
	}

	if filepath.IsAbs(path) {
		return fmt.Errorf("Path %s should be relative to the source root", path)
	}

	cleanPath := filepath.Clean(path)
	if cleanPath == ".." || strings.HasPrefix(cleanPath, fmt.Sprintf("..%c", filepath.Separator)) {
		return fmt.Errorf("Path %s points outside of the source root", path)
	}

	return nil
}
