package launcher_test

import (
	"context"
	"os"

	"github.com/devantler-tech/docdiff/pkg/launcher"
)

// helperProcessEnv makes the test binary act as a docdiff process that execs
// `sh -c "exit 7"` instead of running tests.
const helperProcessEnv = "DOCDIFF_WANT_HELPER_PROCESS"

// helperExitCode is the status the exec'd shell exits with.
const helperExitCode = 7

func runHelperProcess() {
	executor := launcher.NewProcessExecutor(launcher.ModeExec, nil, nil, nil)

	err := executor.Launch(context.Background(), launcher.Invocation{
		Binary: "sh",
		Args:   []string{"-c", "exit 7"},
	})

	// Only reached when the process was not replaced.
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
	}

	os.Exit(2)
}
