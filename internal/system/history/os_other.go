// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package history

import (
	"os"
	"path/filepath"
)

func file(op func(string) (*os.File, error)) (*os.File, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return op(filepath.Join(dir, Name))
}
