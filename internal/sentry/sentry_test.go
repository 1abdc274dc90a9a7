package sentry

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DisabledWithoutDSN(t *testing.T) {
	// Development builds carry no DSN; Init must be a silent no-op even
	// when the user opted into telemetry.
	err := Init("0.0.0-test", true)
	require.NoError(t, err)
	assert.False(t, IsEnabled())
}

func TestInit_DisabledWhenTelemetryOff(t *testing.T) {
	old := dsn
	dsn = "https://key@example.ingest.sentry.io/1"
	defer func() { dsn = old }()

	err := Init("0.0.0-test", false)
	require.NoError(t, err)
	assert.False(t, IsEnabled())
}

func TestWriter_PassesThroughWhenDisabled(t *testing.T) {
	enabled = false
	var buf bytes.Buffer
	w := NewWriter(&buf, LevelError)

	n, err := w.Write([]byte("something broke\n"))
	require.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.Equal(t, "something broke\n", buf.String())
}
