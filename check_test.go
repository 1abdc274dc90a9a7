package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCheckCmd(t *testing.T) (string, error) {
	t.Helper()

	cmd := newCheckCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	err := cmd.Execute()
	return buf.String(), err
}

func TestCheckCmd_ReportsAllSections(t *testing.T) {
	out, _ := runCheckCmd(t)

	assert.Contains(t, out, "tmux binary")
	assert.Contains(t, out, "tmux session")
	assert.Contains(t, out, "tmux server")
	assert.Contains(t, out, "config directory")
	assert.Contains(t, out, "Health:")
}

func TestCheckCmd_UnhealthyWithoutTmux(t *testing.T) {
	// An empty PATH guarantees the tmux binary check fails.
	t.Setenv("PATH", "")
	t.Setenv("TMUX", "")

	out, err := runCheckCmd(t)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errUnhealthy))
	assert.Contains(t, out, "✗")
	assert.NotContains(t, out, "(100%)")
}
