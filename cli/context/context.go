package context

type Ctx struct {
	Headers HeadersCtx
	Cli     CliCtx
}

type HeadersCtx struct {
	Version string

	SourceRoot string
	NodeDir    string
	EngineDir  string
	DistDir    string
	StagingDir string

	Selection        Selection
	TarballTemplates []string

	ResTarballPaths []string
}

// Selection describes which files are collected from the source roots
type Selection struct {
	Suffixes []string `mapstructure:"suffixes"`
	Dirs     []string `mapstructure:"dirs"`
	Files    []string `mapstructure:"files"`

	EngineDirs []string `mapstructure:"engine-dirs"`
	EngineDest string   `mapstructure:"engine-dest"`
}

type CliCtx struct {
	Verbose bool
	Quiet   bool
	Debug   bool

	ConfigPath string
	ShowDiff   bool
}
