//go:build !unix

package launcher

import "errors"

const processReplacementSupported = false

func replaceProcess(_ string, _, _ []string) error {
	return errors.ErrUnsupported
}
