//go:build !windows

package lockfile

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Acquire takes a non-blocking exclusive lock on path, creating the file if
// needed. It returns a release function on success and an error when another
// process already holds the lock.
func Acquire(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file %s: %w", path, err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		return nil, fmt.Errorf("another instance is already running (lock %s held)", path)
	}

	return func() {
		unix.Flock(int(f.Fd()), unix.LOCK_UN) //nolint:errcheck
		f.Close()
	}, nil
}
