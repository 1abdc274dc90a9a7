// Package setup implements the guided first-run wizard: it writes the user's
// config and optionally installs tmux key bindings for the jump commands.
package setup

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/kastheco/tabhop/config"
	"github.com/kastheco/tabhop/log"
)

// Run walks the user through host selection, history and telemetry opt-in,
// and tmux binding installation, then saves the resulting config.
func Run() error {
	cfg := config.LoadConfig()

	host := cfg.DefaultHost
	history := cfg.IsHistoryEnabled()
	telemetry := cfg.IsTelemetryEnabled()
	installBindings := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("which multiplexer should tabhop drive?").
				Options(
					huh.NewOption("tmux", "tmux"),
				).
				Value(&host),
			huh.NewConfirm().
				Title("record jump history?").
				Description("jumps are logged to a local sqlite database").
				Value(&history),
			huh.NewConfirm().
				Title("enable crash reporting?").
				Value(&telemetry),
			huh.NewConfirm().
				Title("install tmux key bindings?").
				Description("adds M-arrow bindings to ~/.tmux.conf").
				Value(&installBindings),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup wizard: %w", err)
	}

	cfg.DefaultHost = host
	cfg.HistoryEnabled = &history
	cfg.TelemetryEnabled = &telemetry
	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	if installBindings {
		confPath, err := defaultTmuxConfPath()
		if err != nil {
			return err
		}
		if err := InstallTmuxBindings(confPath); err != nil {
			return fmt.Errorf("failed to install tmux bindings: %w", err)
		}
		log.InfoLog.Printf("installed tmux bindings in %s", confPath)
		fmt.Printf("Bindings written to %s. Run 'tmux source-file %s' to load them.\n", confPath, confPath)
	}

	fmt.Println("Setup complete.")
	return nil
}

func defaultTmuxConfPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home dir: %w", err)
	}
	return filepath.Join(home, ".tmux.conf"), nil
}
