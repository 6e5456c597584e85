// Package errorhandler runs the docdiff command and turns its failures into a
// single message and an exit status.
package errorhandler

import (
	"bytes"
	"context"
	"strings"

	"github.com/spf13/cobra"
)

// errorPrefix is prepended by cobra to every reported error.
const errorPrefix = "Error:"

// Executor runs the docdiff root command, capturing Cobra's error output so it
// can be reported once, in notify style, by the caller.
type Executor struct{}

// NewExecutor constructs an Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs cmd while intercepting Cobra's error stream.
// It returns nil on success, or a *CommandError holding the normalized message
// and the original error. Exit codes are derived from the original error with
// ExitCode.
func (e *Executor) Execute(ctx context.Context, cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	var captured bytes.Buffer

	errWriter := cmd.ErrOrStderr()

	cmd.SetErr(&captured)
	defer cmd.SetErr(errWriter)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	return &CommandError{
		message: Normalize(captured.String()),
		cause:   err,
	}
}

// CommandError is a command failure together with cobra's normalized report of it.
type CommandError struct {
	message string
	cause   error
}

// Error returns the normalized message, appending the cause when the message
// does not already include it.
func (e *CommandError) Error() string {
	if e == nil {
		return ""
	}

	if e.cause == nil {
		return e.message
	}

	cause := e.cause.Error()

	switch {
	case e.message == "":
		return cause
	case strings.Contains(e.message, cause):
		return e.message
	default:
		return e.message + ": " + cause
	}
}

// Unwrap exposes the underlying cause for errors.Is and errors.As.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// Normalize strips cobra's "Error:" prefix and surrounding blank space from
// captured stderr output. Continuation lines are kept.
func Normalize(raw string) string {
	lines := strings.Split(strings.TrimSpace(raw), "\n")

	first := strings.TrimSpace(lines[0])
	first = strings.TrimSpace(strings.TrimPrefix(first, errorPrefix))
	lines[0] = first

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
