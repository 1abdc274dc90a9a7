//go:build !windows

package lockfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireAndRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.lock")

	release, err := Acquire(path)
	require.NoError(t, err)
	release()

	// Lock can be retaken after release.
	release2, err := Acquire(path)
	require.NoError(t, err)
	release2()
}

func TestAcquireHeldLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.lock")

	release, err := Acquire(path)
	require.NoError(t, err)
	defer release()

	_, err = Acquire(path)
	assert.Error(t, err)
}
