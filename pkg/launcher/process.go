package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Mode selects how ProcessExecutor hands control to the editor.
type Mode int

const (
	// ModeExec replaces the current process when the platform supports it.
	ModeExec Mode = iota
	// ModeWait spawns the editor as a child and waits for it to exit.
	ModeWait
)

// genericExitCode is reported when a child ends without a usable exit status.
const genericExitCode = 1

// ProcessExecutor launches editors as operating system processes.
type ProcessExecutor struct {
	mode   Mode
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Compile-time interface compliance verification.
var _ Executor = (*ProcessExecutor)(nil)

// NewProcessExecutor creates a ProcessExecutor. Nil streams default to the
// process's standard streams. The streams only apply in wait mode; a replaced
// process keeps its own file descriptors.
func NewProcessExecutor(mode Mode, stdin io.Reader, stdout, stderr io.Writer) *ProcessExecutor {
	if stdin == nil {
		stdin = os.Stdin
	}

	if stdout == nil {
		stdout = os.Stdout
	}

	if stderr == nil {
		stderr = os.Stderr
	}

	return &ProcessExecutor{
		mode:   mode,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Mode reports the effective mode, which is ModeWait on platforms without
// process replacement.
func (e *ProcessExecutor) Mode() Mode {
	if !processReplacementSupported {
		return ModeWait
	}

	return e.mode
}

// Launch starts the editor. In exec mode a successful launch never returns.
// A binary missing from PATH yields an error wrapping exec.ErrNotFound.
func (e *ProcessExecutor) Launch(ctx context.Context, inv Invocation) error {
	path, err := exec.LookPath(inv.Binary)
	if err != nil {
		return fmt.Errorf("launch %s: %w", inv.Binary, err)
	}

	if e.Mode() == ModeExec {
		err = replaceProcess(path, inv.Argv(), os.Environ())

		return fmt.Errorf("exec %s: %w", path, err)
	}

	return e.wait(ctx, path, inv)
}

func (e *ProcessExecutor) wait(ctx context.Context, path string, inv Invocation) error {
	cmd := exec.CommandContext(ctx, path, inv.Args...)
	cmd.Args = inv.Argv()
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			code = genericExitCode
		}

		return &ExitError{Code: code, cause: err}
	}

	return fmt.Errorf("run %s: %w", path, err)
}
