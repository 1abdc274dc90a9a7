package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kastheco/tabhop/log"
)

const (
	ConfigFileName = "config.json"
	HistoryDBName  = "history.db"

	defaultHost = "tmux"
)

// GetConfigDir returns the path to the application's configuration
// directory, XDG-compliant ~/.config/tabhop/.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "tabhop"), nil
}

// HistoryDBPath returns the path of the jump-history database.
func HistoryDBPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, HistoryDBName), nil
}

// Config represents the application configuration.
type Config struct {
	// DefaultHost names the host backend supplying pane geometry. Only
	// "tmux" ships today; the field exists so configs survive new backends.
	DefaultHost string `json:"default_host"`
	// HistoryEnabled controls whether jumps are recorded to the history
	// database. Defaults to true when not set.
	HistoryEnabled *bool `json:"history_enabled,omitempty"`
	// TelemetryEnabled controls whether crash reporting via Sentry is
	// active. Defaults to true when not set.
	TelemetryEnabled *bool `json:"telemetry_enabled,omitempty"`
	// Keymap maps command names (left, right, up, down, prev, next) to key
	// strings for the interactive picker, overriding the built-in bindings.
	// The TOML overlay is the authority for this field.
	Keymap map[string]string `json:"keymap,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultHost: defaultHost,
	}
}

// IsHistoryEnabled returns whether jump recording is on.
// Defaults to true when the field is not set.
func (c *Config) IsHistoryEnabled() bool {
	if c.HistoryEnabled == nil {
		return true
	}
	return *c.HistoryEnabled
}

// IsTelemetryEnabled returns whether Sentry telemetry is enabled.
// Defaults to true when the field is not set.
func (c *Config) IsTelemetryEnabled() bool {
	if c.TelemetryEnabled == nil {
		return true
	}
	return *c.TelemetryEnabled
}

// LoadConfig reads config.json, creating it with defaults on first run, and
// overlays config.toml on top. Load failures degrade to defaults rather than
// blocking navigation; a broken config file should never eat a keypress.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}
	return loadConfigFrom(configDir)
}

func loadConfigFrom(configDir string) *Config {
	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := saveConfigTo(configDir, defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return applyTOML(configDir, defaultCfg)
		}

		log.WarningLog.Printf("failed to read config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		log.ErrorLog.Printf("failed to parse config file: %v", err)
		return DefaultConfig()
	}
	if config.DefaultHost == "" {
		config.DefaultHost = defaultHost
	}

	return applyTOML(configDir, &config)
}

// applyTOML overlays config.toml when present. TOML is the authority for the
// keymap and may override the host and feature toggles.
func applyTOML(configDir string, config *Config) *Config {
	tomlResult, err := LoadTOMLConfigFrom(filepath.Join(configDir, TOMLConfigFileName))
	if err != nil {
		if !os.IsNotExist(err) {
			log.WarningLog.Printf("failed to load TOML config: %v", err)
		}
		return config
	}

	if tomlResult.Host != "" {
		config.DefaultHost = tomlResult.Host
	}
	if tomlResult.HistoryEnabled != nil {
		config.HistoryEnabled = tomlResult.HistoryEnabled
	}
	if tomlResult.TelemetryEnabled != nil {
		config.TelemetryEnabled = tomlResult.TelemetryEnabled
	}
	if len(tomlResult.Keys) > 0 {
		config.Keymap = tomlResult.Keys
	}
	return config
}

// saveConfigTo writes the configuration to configDir.
func saveConfigTo(configDir string, config *Config) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(filepath.Join(configDir, ConfigFileName), data, 0o644)
}

// SaveConfig writes the configuration to the default config directory.
func SaveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	return saveConfigTo(configDir, config)
}
