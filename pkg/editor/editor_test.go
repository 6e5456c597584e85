package editor_test

import (
	"testing"

	"github.com/devantler-tech/docdiff/pkg/config"
	"github.com/devantler-tech/docdiff/pkg/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverResolve(t *testing.T) {
	tests := []struct {
		name         string
		flagEditor   string
		configEditor string
		envEditor    string
		expected     string
	}{
		{
			name:         "flag takes precedence over config",
			flagEditor:   "code --wait",
			configEditor: "meld",
			expected:     "code --wait",
		},
		{
			name:         "config takes precedence over env var",
			configEditor: "meld",
			envEditor:    "kdiff3",
			expected:     "meld",
		},
		{
			name:      "DOCDIFF_EDITOR is used when no flag or config",
			envEditor: "gvim",
			expected:  "gvim",
		},
		{
			name:     "falls back to mvim",
			expected: "mvim",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv(editor.EnvEditor, testCase.envEditor)

			var cfg *config.Config
			if testCase.configEditor != "" {
				cfg = &config.Config{Editor: testCase.configEditor}
			}

			resolver := editor.NewResolver(testCase.flagEditor, cfg)

			assert.Equal(t, testCase.expected, resolver.Resolve())
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		commandLine string
		want        editor.Command
	}{
		{
			name:        "single binary",
			commandLine: "mvim",
			want:        editor.Command{Binary: "mvim", Args: []string{}},
		},
		{
			name:        "binary with flags",
			commandLine: "code --wait --new-window",
			want:        editor.Command{Binary: "code", Args: []string{"--wait", "--new-window"}},
		},
		{
			name:        "quoted binary path",
			commandLine: `"/Applications/My Editor/bin/edit" -n`,
			want:        editor.Command{Binary: "/Applications/My Editor/bin/edit", Args: []string{"-n"}},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cmd, err := editor.Parse(testCase.commandLine)
			require.NoError(t, err)

			assert.Equal(t, testCase.want.Binary, cmd.Binary)
			assert.ElementsMatch(t, testCase.want.Args, cmd.Args)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	_, err := editor.Parse("   ")

	require.ErrorIs(t, err, editor.ErrEmptyEditor)
}

func TestCommandDiffArgs(t *testing.T) {
	t.Parallel()

	cmd := editor.Command{Binary: "code", Args: []string{"--wait"}}

	assert.Equal(t,
		[]string{"--wait", "--diff", "foo.markdown", "../foo/doc/foo.markdown"},
		cmd.DiffArgs("--diff", "foo.markdown", "../foo/doc/foo.markdown"),
	)
}

func TestCommandDiffArgsWithoutFlag(t *testing.T) {
	t.Parallel()

	cmd := editor.Command{Binary: "meld"}

	assert.Equal(t,
		[]string{"a.markdown", "../a/doc/a.markdown"},
		cmd.DiffArgs("", "a.markdown", "../a/doc/a.markdown"),
	)
}
