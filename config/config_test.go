package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kastheco/tabhop/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.Initialize(false)
	code := m.Run()
	log.Close()
	os.Exit(code)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "tmux", cfg.DefaultHost)
	assert.True(t, cfg.IsHistoryEnabled(), "history defaults on")
	assert.True(t, cfg.IsTelemetryEnabled(), "telemetry defaults on")
}

func TestLoadConfigFrom_FirstRunWritesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg := loadConfigFrom(dir)
	assert.Equal(t, "tmux", cfg.DefaultHost)

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	require.NoError(t, err)

	var onDisk Config
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, "tmux", onDisk.DefaultHost)
}

func TestLoadConfigFrom_BrokenJSONDegradesToDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{nope"), 0o644))

	cfg := loadConfigFrom(dir)
	assert.Equal(t, "tmux", cfg.DefaultHost)
}

func TestLoadConfigFrom_TOMLOverlay(t *testing.T) {
	dir := t.TempDir()

	jsonContent := `{"default_host": "tmux", "history_enabled": true}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(jsonContent), 0o644))

	tomlContent := `
history = false

[keys]
left = "ctrl+h"
next = "tab"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLConfigFileName), []byte(tomlContent), 0o644))

	cfg := loadConfigFrom(dir)
	assert.False(t, cfg.IsHistoryEnabled(), "TOML overlay wins over JSON")
	assert.Equal(t, "ctrl+h", cfg.Keymap["left"])
	assert.Equal(t, "tab", cfg.Keymap["next"])
}

func TestLoadTOMLConfigFrom_MissingFile(t *testing.T) {
	_, err := LoadTOMLConfigFrom(filepath.Join(t.TempDir(), "config.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadTOMLConfigFrom_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("keys = ["), 0o644))

	_, err := LoadTOMLConfigFrom(path)
	assert.Error(t, err)
}

func TestSaveTOMLConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	off := false
	in := &TOMLConfig{
		Host:             "tmux",
		TelemetryEnabled: &off,
		Keys:             map[string]string{"prev": "P"},
	}
	require.NoError(t, SaveTOMLConfigTo(path, in))

	out, err := LoadTOMLConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, in.Host, out.Host)
	require.NotNil(t, out.TelemetryEnabled)
	assert.False(t, *out.TelemetryEnabled)
	assert.Equal(t, "P", out.Keys["prev"])
}
