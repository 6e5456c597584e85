// Package docpath derives the pair of documentation files compared by docdiff.
//
// Paths are built by plain string concatenation. The project name is embedded
// verbatim, so separators, dots and case survive untouched.
package docpath

import "errors"

// ErrNoProject is returned when no project name is available.
var ErrNoProject = errors.New("No project name provided") //nolint:staticcheck // user-facing message

const (
	// DefaultRoot is the directory holding sibling project checkouts.
	DefaultRoot = ".."
	// DefaultDocDir is the documentation directory inside a project checkout.
	DefaultDocDir = "doc"
	// DefaultExtension is appended to the project name to form file names.
	DefaultExtension = ".markdown"
)

// Layout describes where the web and original documentation files live.
type Layout struct {
	Root      string
	DocDir    string
	Extension string
}

// Pair holds the two files handed to the diff editor.
type Pair struct {
	// WebFile is the working copy, relative to the current directory.
	WebFile string
	// OrigFile is the copy inside the sibling project's doc directory.
	OrigFile string
}

// DefaultLayout returns the layout <project>.markdown vs ../<project>/doc/<project>.markdown.
func DefaultLayout() Layout {
	return Layout{
		Root:      DefaultRoot,
		DocDir:    DefaultDocDir,
		Extension: DefaultExtension,
	}
}

// Resolve builds the file pair for project using the default layout.
func Resolve(project string) (Pair, error) {
	return DefaultLayout().Resolve(project)
}

// Resolve builds the file pair for project.
func (l Layout) Resolve(project string) (Pair, error) {
	if project == "" {
		return Pair{}, ErrNoProject
	}

	fileName := project + l.Extension

	return Pair{
		WebFile:  fileName,
		OrigFile: l.Root + "/" + project + "/" + l.DocDir + "/" + fileName,
	}, nil
}
