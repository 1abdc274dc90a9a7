package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kastheco/tabhop/navigator"
)

func TestRootCommand_HasJumpSubcommands(t *testing.T) {
	for _, dir := range navigator.Directions() {
		cmd, _, err := rootCmd.Find([]string{dir.String()})
		require.NoError(t, err)
		require.NotNil(t, cmd)
		require.Equal(t, dir.String(), cmd.Name())
	}
}

func TestRootCommand_UsesSetupSubcommand(t *testing.T) {
	setupCmd, _, err := rootCmd.Find([]string{"setup"})
	require.NoError(t, err)
	require.NotNil(t, setupCmd)
	require.Equal(t, "setup", setupCmd.Name())
}

func TestRootCommand_HasHistoryAndGuide(t *testing.T) {
	for _, name := range []string{"history", "guide", "check", "version", "debug"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		require.Equal(t, name, cmd.Name())
	}
}
