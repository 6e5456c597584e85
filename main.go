// Package main is the entry point for the docdiff application.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/devantler-tech/docdiff/internal/buildmeta"
	"github.com/devantler-tech/docdiff/pkg/cli/cmd"
	"github.com/devantler-tech/docdiff/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/docdiff/pkg/ui/notify"
)

func main() {
	exitCode := runSafely(os.Args[1:], runWithArgs, os.Stderr)

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

//nolint:nonamedreturns // Named return simplifies panic recovery logic.
func runSafely(args []string, runner func([]string) int, errWriter io.Writer) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			notify.Errorf(errWriter, "%s", fmt.Sprintf("panic recovered: %v\n%s", r, debug.Stack()))

			exitCode = errorhandler.ExitFailure
		}
	}()

	exitCode = runner(args)

	return exitCode
}

func runWithArgs(args []string) int {
	rootCmd := cmd.NewRootCmd(buildmeta.Version, buildmeta.Commit, buildmeta.Date)
	rootCmd.SetArgs(args)

	err := cmd.Execute(context.Background(), rootCmd)
	if err != nil && !errorhandler.IsEditorExit(err) {
		notify.Errorf(rootCmd.ErrOrStderr(), "%v", err)
	}

	return errorhandler.ExitCode(err)
}
