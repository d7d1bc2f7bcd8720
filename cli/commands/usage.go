package commands

const (
	versionUsage = `Node version
Used in the result tarball names
`

	sourceRootUsage = `Path to the source root
Defaults to NODE_HEADERS_SOURCE_ROOT
or the current directory
`

	nodeDirUsage = `Path to the Node source tree
Defaults to vendor/node in the source root
`

	engineDirUsage = `Path to the Chromium source tree
Defaults to vendor/brightray/vendor/download/
libchromiumcontent/src in the source root
`

	distDirUsage = `Path to the directory the tarballs
are placed to
Defaults to dist in the source root
`

	configUsage = `Path to the headers selection config
Defaults to .node-headers.yml in the source root
`

	diffUsage = `Show the difference between the staging
directory and files to be collected
`
)
