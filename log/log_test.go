package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Config loading runs before Initialize in every command, so the package
// defaults must be writable, not nil.
func TestDefaultLoggersWriteSafely(t *testing.T) {
	require.NotNil(t, InfoLog)
	require.NotNil(t, WarningLog)
	require.NotNil(t, ErrorLog)

	assert.NotPanics(t, func() {
		InfoLog.Printf("before initialize: %d", 1)
		WarningLog.Printf("before initialize: %d", 2)
		ErrorLog.Printf("before initialize: %d", 3)
	})
}

func TestInitializeAndClose(t *testing.T) {
	Initialize(false)
	defer Close()

	require.NotNil(t, InfoLog)
	assert.NotPanics(t, func() {
		InfoLog.Print("initialized")
		ErrorLog.Print("initialized")
	})
}
