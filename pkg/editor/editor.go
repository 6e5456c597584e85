package editor

import (
	"errors"
	"fmt"
	"os"

	"github.com/devantler-tech/docdiff/pkg/config"
	shellquote "github.com/kballard/go-shellquote"
)

// DefaultEditor is the diff editor used when nothing else is configured.
const DefaultEditor = config.DefaultEditor

// EnvEditor names the environment variable consulted when no config is available.
const EnvEditor = "DOCDIFF_EDITOR"

// ErrEmptyEditor is returned when an editor command line holds no words.
var ErrEmptyEditor = errors.New("editor command is empty")

// Resolver handles editor configuration resolution with proper precedence.
type Resolver struct {
	flagEditor   string
	configEditor string
}

// NewResolver creates a new editor resolver.
func NewResolver(flagEditor string, cfg *config.Config) *Resolver {
	configEditor := ""
	if cfg != nil {
		configEditor = cfg.Editor
	}

	return &Resolver{
		flagEditor:   flagEditor,
		configEditor: configEditor,
	}
}

// Resolve resolves the editor command line based on precedence:
// 1. --editor flag
// 2. editor from config (which already folds in DOCDIFF_EDITOR and .docdiff.yaml)
// 3. DOCDIFF_EDITOR environment variable
// 4. DefaultEditor.
func (r *Resolver) Resolve() string {
	if r.flagEditor != "" {
		return r.flagEditor
	}

	if r.configEditor != "" {
		return r.configEditor
	}

	if editorEnv := os.Getenv(EnvEditor); editorEnv != "" {
		return editorEnv
	}

	return DefaultEditor
}

// Command is an editor binary plus the arguments that precede the diff arguments.
type Command struct {
	Binary string
	Args   []string
}

// Parse splits an editor command line such as `code --wait` into a Command.
// Quoting follows POSIX shell word rules.
func Parse(commandLine string) (Command, error) {
	words, err := shellquote.Split(commandLine)
	if err != nil {
		return Command{}, fmt.Errorf("parse editor command %q: %w", commandLine, err)
	}

	if len(words) == 0 {
		return Command{}, ErrEmptyEditor
	}

	return Command{
		Binary: words[0],
		Args:   words[1:],
	}, nil
}

// DiffArgs returns the editor arguments for comparing web against orig.
// An empty diffFlag is omitted.
func (c Command) DiffArgs(diffFlag, web, orig string) []string {
	args := make([]string, 0, len(c.Args)+3)
	args = append(args, c.Args...)

	if diffFlag != "" {
		args = append(args, diffFlag)
	}

	return append(args, web, orig)
}
