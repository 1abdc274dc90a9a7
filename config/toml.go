package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const TOMLConfigFileName = "config.toml"

// TOMLConfig is the shape of the optional config.toml overlay. It exists so
// hand-edited settings (notably the interactive keymap) live in a format
// that tolerates comments, while config.json stays machine-written.
type TOMLConfig struct {
	Host             string            `toml:"host,omitempty"`
	HistoryEnabled   *bool             `toml:"history,omitempty"`
	TelemetryEnabled *bool             `toml:"telemetry,omitempty"`
	Keys             map[string]string `toml:"keys,omitempty"`
}

// LoadTOMLConfig reads config.toml from the default config directory.
func LoadTOMLConfig() (*TOMLConfig, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	return LoadTOMLConfigFrom(filepath.Join(configDir, TOMLConfigFileName))
}

// LoadTOMLConfigFrom reads and parses a TOML config at the given path.
func LoadTOMLConfigFrom(path string) (*TOMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tc TOMLConfig
	if err := toml.Unmarshal(data, &tc); err != nil {
		return nil, err
	}
	return &tc, nil
}

// SaveTOMLConfigTo writes the overlay to the given path, creating parent
// directories as needed. Used by the setup wizard.
func SaveTOMLConfigTo(path string, tc *TOMLConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(tc)
}
