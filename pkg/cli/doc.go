// Package cli groups docdiff's command wiring.
//
//   - cli/cmd: the cobra root command and its handler
//   - cli/ui/errorhandler: cobra error normalization and exit code mapping
package cli
