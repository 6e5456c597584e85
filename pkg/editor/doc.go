// Package editor resolves which diff editor docdiff launches.
//
// Resolution precedence is flags > config > environment variables > the
// built-in default (mvim). The resolved value is a command line that is split
// into a binary and leading arguments before the diff arguments are appended.
package editor
