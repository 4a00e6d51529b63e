//go:build !linux && !darwin

package fs

import (
	"os"
	"time"
)

// Without a portable atime field the modification time is the closest signal.
func lastAccess(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}

	return info.ModTime(), nil
}
