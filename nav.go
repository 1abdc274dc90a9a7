package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kastheco/tabhop/config"
	"github.com/kastheco/tabhop/history"
	"github.com/kastheco/tabhop/host/tmux"
	"github.com/kastheco/tabhop/log"
	"github.com/kastheco/tabhop/navigator"
)

var jumpShorts = map[navigator.Direction]string{
	navigator.DirLeft:  "Focus the pane group to the left",
	navigator.DirRight: "Focus the pane group to the right",
	navigator.DirUp:    "Focus the pane group above",
	navigator.DirDown:  "Focus the pane group below",
	navigator.DirPrev:  "Focus the previous pane group in reading order",
	navigator.DirNext:  "Focus the next pane group in reading order",
}

// newJumpCmds builds one subcommand per direction so tmux bindings can call
// e.g. "tabhop left" directly.
func newJumpCmds() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(navigator.Directions()))
	for _, dir := range navigator.Directions() {
		cmds = append(cmds, &cobra.Command{
			Use:   dir.String(),
			Short: jumpShorts[dir],
			RunE: func(cmd *cobra.Command, args []string) error {
				return runJump(cmd.Context(), dir)
			},
			SilenceUsage: true,
		})
	}
	return cmds
}

func runJump(ctx context.Context, dir navigator.Direction) error {
	cfg := config.LoadConfig()
	log.Initialize(cfg.IsTelemetryEnabled())
	defer log.Close()

	if !tmux.InsideTmux() {
		return fmt.Errorf("error: tabhop %s must be run from inside a tmux session", dir)
	}

	nav, err := navigator.New(tmux.NewHost())
	if err != nil {
		return err
	}

	jump, ok, err := nav.Navigate(ctx, dir)
	if err != nil {
		return fmt.Errorf("failed to jump %s: %w", dir, err)
	}
	if !ok {
		log.InfoLog.Printf("jump %s: no candidate panes", dir)
		return nil
	}

	recordJump(cfg, jump)
	return nil
}

// recordJump logs the jump to the history database. Best-effort: a broken
// database never fails the jump itself.
func recordJump(cfg *config.Config, jump navigator.Jump) {
	if !cfg.IsHistoryEnabled() {
		return
	}
	dbPath, err := config.HistoryDBPath()
	if err != nil {
		return
	}
	rec, err := history.NewSQLiteRecorder(dbPath)
	if err != nil {
		log.WarningLog.Printf("history unavailable: %v", err)
		return
	}
	defer rec.Close()

	rec.Record(history.Jump{
		Timestamp:    time.Now(),
		Direction:    jump.Direction.String(),
		FromPane:     string(jump.From.Handle),
		ToPane:       string(jump.To.Handle),
		FromDocument: string(jump.From.Document),
		ToDocument:   string(jump.To.Document),
	})
}

func init() {
	for _, c := range newJumpCmds() {
		rootCmd.AddCommand(c)
	}
}
