package launcher_test

import (
	"os"
	"os/exec"
	"testing"

	"github.com/devantler-tech/docdiff/pkg/docpath"
	"github.com/devantler-tech/docdiff/pkg/editor"
	"github.com/devantler-tech/docdiff/pkg/launcher"
	"github.com/gkampitakis/go-snaps/snaps"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if os.Getenv(helperProcessEnv) == "1" {
		runHelperProcess()
	}

	exitCode := m.Run()

	_, err := snaps.Clean(m, snaps.CleanOpts{Sort: true})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to clean snapshots: " + err.Error() + "\n")

		os.Exit(1)
	}

	os.Exit(exitCode)
}

func mustPair(t *testing.T, project string) docpath.Pair {
	t.Helper()

	pair, err := docpath.Resolve(project)
	require.NoError(t, err)

	return pair
}

func TestBuildDefaultEditor(t *testing.T) {
	t.Parallel()

	cmd, err := editor.Parse(editor.DefaultEditor)
	require.NoError(t, err)

	inv := launcher.Build(cmd, "-d", mustPair(t, "foo"))

	assert.Equal(t, "mvim", inv.Binary)
	assert.Equal(t, []string{"-d", "foo.markdown", "../foo/doc/foo.markdown"}, inv.Args)
}

func TestBuildKeepsEditorArgsFirst(t *testing.T) {
	t.Parallel()

	cmd, err := editor.Parse("code --wait")
	require.NoError(t, err)

	inv := launcher.Build(cmd, "--diff", mustPair(t, "a/b"))

	assert.Equal(t, "code", inv.Binary)
	assert.Equal(t,
		[]string{"--wait", "--diff", "a/b.markdown", "../a/b/doc/a/b.markdown"},
		inv.Args,
	)
	assert.Equal(t,
		[]string{"code", "--wait", "--diff", "a/b.markdown", "../a/b/doc/a/b.markdown"},
		inv.Argv(),
	)
}

func TestInvocationStringSnapshot(t *testing.T) {
	t.Parallel()

	inv := launcher.Build(editor.Command{Binary: "mvim"}, "-d", mustPair(t, "foo"))

	snaps.MatchSnapshot(t, inv.String())
}

func TestInvocationStringRoundTrips(t *testing.T) {
	t.Parallel()

	inv := launcher.Invocation{Binary: "mvim", Args: []string{"-d", "my doc.markdown"}}

	words, err := shellquote.Split(inv.String())
	require.NoError(t, err)

	assert.Equal(t, inv.Argv(), words)
}

func TestExitErrorMessage(t *testing.T) {
	t.Parallel()

	err := error(&launcher.ExitError{Code: 3})

	assert.Equal(t, "editor exited with status 3", err.Error())

	var exitErr *launcher.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Code)
	assert.NotErrorIs(t, err, exec.ErrNotFound)
}
