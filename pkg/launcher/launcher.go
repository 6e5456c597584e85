// Package launcher hands a documentation pair over to the diff editor.
//
// On unix platforms the editor replaces the docdiff process, so the editor's
// exit status becomes docdiff's own. Elsewhere, or when wait mode is requested,
// the editor is spawned as a child and its exit status is forwarded.
package launcher

import (
	"context"
	"fmt"

	"github.com/devantler-tech/docdiff/pkg/docpath"
	"github.com/devantler-tech/docdiff/pkg/editor"
	shellquote "github.com/kballard/go-shellquote"
)

// Invocation is a fully built editor command.
type Invocation struct {
	Binary string
	Args   []string
}

// Build assembles the invocation comparing pair.WebFile against pair.OrigFile.
func Build(cmd editor.Command, diffFlag string, pair docpath.Pair) Invocation {
	return Invocation{
		Binary: cmd.Binary,
		Args:   cmd.DiffArgs(diffFlag, pair.WebFile, pair.OrigFile),
	}
}

// Argv returns the binary followed by its arguments.
func (i Invocation) Argv() []string {
	return append([]string{i.Binary}, i.Args...)
}

// String renders the invocation as a shell-quoted command line.
func (i Invocation) String() string {
	return shellquote.Join(i.Argv()...)
}

// Executor launches an editor invocation.
type Executor interface {
	Launch(ctx context.Context, inv Invocation) error
}

// ExitError reports a non-zero exit status of a waited-for editor.
type ExitError struct {
	Code  int
	cause error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("editor exited with status %d", e.Code)
}

// Unwrap exposes the underlying *exec.ExitError.
func (e *ExitError) Unwrap() error {
	return e.cause
}

// Factory creates an Executor for the requested mode.
type Factory func(mode Mode) Executor

// DefaultFactory creates ProcessExecutors bound to the standard streams.
func DefaultFactory(mode Mode) Executor {
	return NewProcessExecutor(mode, nil, nil, nil)
}
