package errorhandler

import (
	"errors"
	"os/exec"

	"github.com/devantler-tech/docdiff/pkg/launcher"
)

// Exit codes reported by docdiff itself.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitNotFound = 127
)

// ExitCode maps an execution error to the process exit status.
// A waited-for editor's own status is forwarded unchanged; a missing editor
// binary maps to 127 as in POSIX shells.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *launcher.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if errors.Is(err, exec.ErrNotFound) {
		return ExitNotFound
	}

	return ExitFailure
}

// IsEditorExit reports whether err only carries an editor's exit status, which
// the editor has already reported on its own.
func IsEditorExit(err error) bool {
	var exitErr *launcher.ExitError

	return errors.As(err, &exitErr)
}
