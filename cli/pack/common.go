package pack

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/node-headers/node-headers-cli/cli/context"
	"github.com/node-headers/node-headers-cli/cli/templates"
)

const tgzExt = "tar.gz"

type tarballNameCtx struct {
	Version string
}

// getTarballLabels renders tarball name templates.
// Label is used both as the tarball root directory name
// and as the tarball file name without extension
func getTarballLabels(ctx *context.Ctx) ([]string, error) {
	labels := make([]string, 0, len(ctx.Headers.TarballTemplates))
	seen := make(map[string]bool, len(ctx.Headers.TarballTemplates))

	nameCtx := tarballNameCtx{
		Version: ctx.Headers.Version,
	}

	for _, tmpl := range ctx.Headers.TarballTemplates {
		label, err := templates.GetTemplatedStr(&tmpl, nameCtx)
		if err != nil {
			return nil, fmt.Errorf("Failed to render tarball name template %q: %s", tmpl, err)
		}

		label = strings.TrimSpace(label)

		if label == "" || label == "." || label == ".." {
			return nil, fmt.Errorf("Tarball name template %q results in invalid name %q", tmpl, label)
		}

		if strings.ContainsAny(label, `/\`) {
			return nil, fmt.Errorf("Tarball name %q shouldn't contain path separators", label)
		}

		if seen[label] {
			return nil, fmt.Errorf("Tarball name %q is specified more than once", label)
		}
		seen[label] = true

		labels = append(labels, label)
	}

	return labels, nil
}

func getTarballPath(ctx *context.Ctx, label string) string {
	return filepath.Join(ctx.Headers.DistDir, fmt.Sprintf("%s.%s", label, tgzExt))
}
