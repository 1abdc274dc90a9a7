package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/kastheco/tabhop/config"
	"github.com/kastheco/tabhop/host/tmux"
	"github.com/kastheco/tabhop/log"
)

// errUnhealthy is returned when a check fails to signal exit code 1 without
// printing a message.
var errUnhealthy = errors.New("unhealthy")

type checkResult struct {
	name   string
	ok     bool
	detail string
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Audit the environment tabhop needs to jump panes",
		Long: `Checks each prerequisite and reports its state:

  1. tmux binary on PATH
  2. running inside a tmux session
  3. tmux server reachable
  4. config directory writable

Exit code 0 if everything passes, exit code 1 otherwise.`,
		RunE: runCheck,
		// Suppress usage on error, health failures are not usage errors.
		SilenceUsage: true,
		// Suppress cobra's "Error: ..." line for the unhealthy sentinel.
		SilenceErrors: true,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	log.Initialize(false)
	defer log.Close()

	results := auditEnvironment(cmd.Context())

	out := cmd.OutOrStdout()
	ok := 0
	for _, r := range results {
		glyph := "✓"
		if r.ok {
			ok++
		} else {
			glyph = "✗"
		}
		fmt.Fprintf(out, "  %s %-22s %s\n", glyph, r.name, r.detail)
	}

	pct := 0
	if len(results) > 0 {
		pct = ok * 100 / len(results)
	}
	fmt.Fprintf(out, "\nHealth: %d/%d OK (%d%%)\n", ok, len(results), pct)

	if pct < 100 {
		return errUnhealthy
	}
	return nil
}

func auditEnvironment(ctx context.Context) []checkResult {
	results := make([]checkResult, 0, 4)

	tmuxPath, err := exec.LookPath("tmux")
	results = append(results, checkResult{
		name:   "tmux binary",
		ok:     err == nil,
		detail: tmuxPath,
	})

	inside := tmux.InsideTmux()
	detail := "not inside a tmux session"
	if inside {
		detail = "inside a tmux session"
	}
	results = append(results, checkResult{name: "tmux session", ok: inside, detail: detail})

	if err == nil {
		version, verr := tmux.NewHost().ServerVersion(ctx)
		results = append(results, checkResult{
			name:   "tmux server",
			ok:     verr == nil,
			detail: version,
		})
	} else {
		results = append(results, checkResult{name: "tmux server", ok: false, detail: "skipped, no tmux binary"})
	}

	configDir, err := config.GetConfigDir()
	writable := err == nil
	if writable {
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			writable = false
		}
	}
	results = append(results, checkResult{name: "config directory", ok: writable, detail: configDir})

	return results
}

func init() {
	rootCmd.AddCommand(newCheckCmd())
}
