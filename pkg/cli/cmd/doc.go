// Package cmd provides the command-line interface for docdiff.
//
// The root command takes a single project name, derives the web and original
// documentation paths from it and launches the configured diff editor.
package cmd
