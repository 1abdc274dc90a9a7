package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kastheco/tabhop/config"
	"github.com/kastheco/tabhop/history"
	"github.com/kastheco/tabhop/log"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent pane jumps, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()
			if !cfg.IsHistoryEnabled() {
				fmt.Fprintln(cmd.OutOrStdout(), "History is disabled. Enable it with 'tabhop setup'.")
				return nil
			}

			dbPath, err := config.HistoryDBPath()
			if err != nil {
				return fmt.Errorf("failed to resolve history path: %w", err)
			}
			rec, err := history.NewSQLiteRecorder(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open history: %w", err)
			}
			defer rec.Close()

			jumps, err := rec.Recent(limit)
			if err != nil {
				return fmt.Errorf("failed to read history: %w", err)
			}
			if len(jumps) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No jumps recorded yet.")
				return nil
			}

			out := cmd.OutOrStdout()
			for _, j := range jumps {
				fmt.Fprintf(out, "%s  %-5s  %s -> %s  (%s -> %s)\n",
					j.Timestamp.Format("2006-01-02 15:04:05"),
					j.Direction,
					j.FromPane, j.ToPane,
					j.FromDocument, j.ToDocument,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of jumps to show")
	return cmd
}

func init() {
	rootCmd.AddCommand(newHistoryCmd())
}
