package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kastheco/tabhop/app"
	"github.com/kastheco/tabhop/config"
	"github.com/kastheco/tabhop/host/tmux"
	sentrypkg "github.com/kastheco/tabhop/internal/sentry"
	"github.com/kastheco/tabhop/internal/setup"
	"github.com/kastheco/tabhop/log"
)

var (
	version = "0.3.0"

	rootCmd = &cobra.Command{
		Use:   "tabhop",
		Short: "tabhop - Jump between tmux panes by direction, from a keybinding or an interactive picker.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg := config.LoadConfig()
			if err := sentrypkg.Init(version, cfg.IsTelemetryEnabled()); err != nil {
				// Non-fatal: sentry failure should not prevent startup
				_ = err
			}
			defer sentrypkg.Flush()
			defer sentrypkg.RecoverPanic()

			log.Initialize(cfg.IsTelemetryEnabled())
			defer log.Close()

			if !tmux.InsideTmux() {
				return fmt.Errorf("error: tabhop must be run from inside a tmux session")
			}

			sentrypkg.SetContext(cfg.DefaultHost, true)

			return app.Run(ctx, cfg)
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)

			dbPath, err := config.HistoryDBPath()
			if err == nil {
				fmt.Printf("History: %s\n", dbPath)
			}

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of tabhop",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tabhop version %s\n", version)
			fmt.Printf("https://github.com/kastheco/tabhop/releases/tag/v%s\n", version)
		},
	}
)

func init() {
	setupCmd := &cobra.Command{
		Use:     "setup",
		Aliases: []string{"init"},
		Short:   "Configure tabhop and install tmux key bindings",
		Long: `Run an interactive wizard to:
  1. Pick the multiplexer backend
  2. Opt in or out of jump history and crash reporting
  3. Install M-arrow jump bindings into ~/.tmux.conf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()
			return setup.Run()
		},
	}

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(setupCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUnhealthy) {
			os.Exit(1)
		}
		fmt.Println(err)
	}
}
