package pack

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/node-headers/node-headers-cli/cli/context"
)

func TestGetTarballLabels(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var ctx context.Ctx
	var labels []string
	var err error

	ctx.Headers.Version = "10.0.0"

	// default templates
	ctx.Headers.TarballTemplates = []string{
		"node-{{ .Version }}",
		"iojs-{{ .Version }}",
		"iojs-{{ .Version }}-headers",
	}
	labels, err = getTarballLabels(&ctx)
	assert.Nil(err)
	assert.Equal([]string{"node-10.0.0", "iojs-10.0.0", "iojs-10.0.0-headers"}, labels)

	// version is opaque
	ctx.Headers.Version = "v1.4.0-beta.1"
	ctx.Headers.TarballTemplates = []string{"node-{{ .Version }}"}
	labels, err = getTarballLabels(&ctx)
	assert.Nil(err)
	assert.Equal([]string{"node-v1.4.0-beta.1"}, labels)

	// template functions
	ctx.Headers.Version = "RC1"
	ctx.Headers.TarballTemplates = []string{"node-{{ .Version | ToLower }}"}
	labels, err = getTarballLabels(&ctx)
	assert.Nil(err)
	assert.Equal([]string{"node-rc1"}, labels)

	// unknown field
	ctx.Headers.TarballTemplates = []string{"node-{{ .Release }}"}
	_, err = getTarballLabels(&ctx)
	assert.NotNil(err)
	assert.Contains(err.Error(), "Failed to render tarball name template")

	// bad template
	ctx.Headers.TarballTemplates = []string{"node-{{ .Version"}
	_, err = getTarballLabels(&ctx)
	assert.NotNil(err)

	// path separator
	ctx.Headers.Version = "1.0.0"
	ctx.Headers.TarballTemplates = []string{"../node-{{ .Version }}"}
	_, err = getTarballLabels(&ctx)
	assert.NotNil(err)
	assert.Contains(err.Error(), "shouldn't contain path separators")

	// empty name
	ctx.Headers.TarballTemplates = []string{"  "}
	_, err = getTarballLabels(&ctx)
	assert.NotNil(err)
	assert.Contains(err.Error(), "results in invalid name")

	// duplicates
	ctx.Headers.TarballTemplates = []string{"node-{{ .Version }}", "node-1.0.0"}
	_, err = getTarballLabels(&ctx)
	assert.NotNil(err)
	assert.Contains(err.Error(), `Tarball name "node-1.0.0" is specified more than once`)
}

func TestGetTarballPath(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var ctx context.Ctx
	ctx.Headers.DistDir = filepath.Join("/", "src", "dist")

	assert.Equal(
		filepath.Join("/", "src", "dist", "iojs-10.0.0-headers.tar.gz"),
		getTarballPath(&ctx, "iojs-10.0.0-headers"),
	)
}
