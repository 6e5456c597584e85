//go:build unix

package launcher

import "golang.org/x/sys/unix"

const processReplacementSupported = true

func replaceProcess(path string, argv, env []string) error {
	return unix.Exec(path, argv, env) //nolint:wrapcheck // wrapped by caller
}
