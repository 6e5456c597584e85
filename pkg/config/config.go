// Package config loads docdiff settings from flags, DOCDIFF_* environment
// variables and an optional .docdiff.yaml file.
//
// Configuration priority: defaults < config file < environment variables < flags.
package config

import "github.com/devantler-tech/docdiff/pkg/docpath"

const (
	// EnvPrefix is the prefix for environment variable overrides (DOCDIFF_EDITOR, ...).
	EnvPrefix = "DOCDIFF"
	// FileName is the config file name searched for, without extension.
	FileName = ".docdiff"
	// FileType is the config file format.
	FileType = "yaml"
)

// Config keys. They double as flag names.
const (
	KeyEditor    = "editor"
	KeyDiffFlag  = "diff-flag"
	KeyOrigRoot  = "orig-root"
	KeyDocDir    = "doc-dir"
	KeyExtension = "extension"
	KeyWait      = "wait"
	KeyDryRun    = "dry-run"
	KeyVerbose   = "verbose"
)

// Default values.
const (
	DefaultEditor   = "mvim"
	DefaultDiffFlag = "-d"
)

// Config is the resolved docdiff configuration.
type Config struct {
	Editor    string `mapstructure:"editor"`
	DiffFlag  string `mapstructure:"diff-flag"`
	OrigRoot  string `mapstructure:"orig-root"`
	DocDir    string `mapstructure:"doc-dir"`
	Extension string `mapstructure:"extension"`
	Wait      bool   `mapstructure:"wait"`
	DryRun    bool   `mapstructure:"dry-run"`
	Verbose   bool   `mapstructure:"verbose"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Editor:    DefaultEditor,
		DiffFlag:  DefaultDiffFlag,
		OrigRoot:  docpath.DefaultRoot,
		DocDir:    docpath.DefaultDocDir,
		Extension: docpath.DefaultExtension,
	}
}

// Layout returns the documentation layout described by the config.
func (c *Config) Layout() docpath.Layout {
	return docpath.Layout{
		Root:      c.OrigRoot,
		DocDir:    c.DocDir,
		Extension: c.Extension,
	}
}
