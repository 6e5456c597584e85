package docpath_test

import (
	"testing"

	"github.com/devantler-tech/docdiff/pkg/docpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		project  string
		wantWeb  string
		wantOrig string
	}{
		{
			name:     "simple project",
			project:  "foo",
			wantWeb:  "foo.markdown",
			wantOrig: "../foo/doc/foo.markdown",
		},
		{
			name:     "case is preserved",
			project:  "MyLib",
			wantWeb:  "MyLib.markdown",
			wantOrig: "../MyLib/doc/MyLib.markdown",
		},
		{
			name:     "path separator is not sanitized",
			project:  "a/b",
			wantWeb:  "a/b.markdown",
			wantOrig: "../a/b/doc/a/b.markdown",
		},
		{
			name:     "surrounding whitespace is kept",
			project:  " x ",
			wantWeb:  " x .markdown",
			wantOrig: "../ x /doc/ x .markdown",
		},
		{
			name:     "dots are not cleaned",
			project:  "../up",
			wantWeb:  "../up.markdown",
			wantOrig: "../../up/doc/../up.markdown",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			pair, err := docpath.Resolve(testCase.project)
			require.NoError(t, err)

			assert.Equal(t, testCase.wantWeb, pair.WebFile)
			assert.Equal(t, testCase.wantOrig, pair.OrigFile)
		})
	}
}

func TestResolveEmptyProject(t *testing.T) {
	t.Parallel()

	pair, err := docpath.Resolve("")

	require.ErrorIs(t, err, docpath.ErrNoProject)
	assert.Equal(t, "No project name provided", err.Error())
	assert.Zero(t, pair)
}

func TestLayoutResolveCustom(t *testing.T) {
	t.Parallel()

	layout := docpath.Layout{
		Root:      "/src",
		DocDir:    "docs",
		Extension: ".md",
	}

	pair, err := layout.Resolve("bar")
	require.NoError(t, err)

	assert.Equal(t, "bar.md", pair.WebFile)
	assert.Equal(t, "/src/bar/docs/bar.md", pair.OrigFile)
}

func TestDefaultLayout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, docpath.Layout{
		Root:      "..",
		DocDir:    "doc",
		Extension: ".markdown",
	}, docpath.DefaultLayout())
}
