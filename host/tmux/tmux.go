// Package tmux adapts a tmux server to the navigator's Provider contract.
// Each pane of the attached session is one navigable group; panes living in
// non-active tmux windows are reported with placeholder bounds so the
// navigator excludes them from candidacy.
package tmux

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/kastheco/tabhop/cmd"
	"github.com/kastheco/tabhop/navigator"
)

// paneFormat is the list-panes format string. Tab-separated so pane paths
// containing spaces survive parsing; tmux format variables never emit tabs.
const paneFormat = "#{pane_id}\t#{window_active}\t#{pane_active}\t" +
	"#{pane_left}\t#{pane_top}\t#{pane_right}\t#{pane_bottom}\t" +
	"#{pane_current_command}\t#{pane_current_path}"

// Host talks to the tmux server of the attached session.
type Host struct {
	cmdExec cmd.Executor
}

// NewHost returns a Host backed by the real tmux binary.
func NewHost() *Host {
	return &Host{cmdExec: cmd.MakeExecutor()}
}

// NewHostWithDeps returns a Host with an injected executor for testing.
func NewHostWithDeps(cmdExec cmd.Executor) *Host {
	return &Host{cmdExec: cmdExec}
}

// CaptureSnapshot lists every pane in the attached session and converts it
// into a navigator snapshot. Panes of the active window carry their real
// rectangles shifted by one cell, since tmux coordinates are 0-based and the
// origin is reserved for the degenerate placeholder. Panes of other windows
// get the placeholder so they never count as separate groups.
func (h *Host) CaptureSnapshot(ctx context.Context) (navigator.Snapshot, error) {
	listCmd := exec.CommandContext(ctx, "tmux", "list-panes", "-s", "-F", paneFormat)
	out, err := h.cmdExec.Output(listCmd)
	if err != nil {
		return navigator.Snapshot{}, fmt.Errorf("tmux list-panes: %w", err)
	}

	var snap navigator.Snapshot
	for _, line := range strings.Split(strings.TrimRight(string(out), "\n"), "\n") {
		if line == "" {
			continue
		}
		entry, active, err := parsePaneLine(line)
		if err != nil {
			return navigator.Snapshot{}, err
		}
		snap.Entries = append(snap.Entries, entry)
		if active {
			snap.Active = entry.Handle
		}
	}
	return snap, nil
}

// Activate focuses the pane with the given handle. A stale handle makes
// tmux exit non-zero; the error is returned for the caller to log, no retry.
func (h *Host) Activate(ctx context.Context, handle navigator.Handle) error {
	selectCmd := exec.CommandContext(ctx, "tmux", "select-pane", "-t", string(handle))
	if err := h.cmdExec.Run(selectCmd); err != nil {
		return fmt.Errorf("tmux select-pane %s: %w", handle, err)
	}
	return nil
}

// CapturePane returns the visible text content of a pane, for previews.
func (h *Host) CapturePane(ctx context.Context, handle navigator.Handle) (string, error) {
	captureCmd := exec.CommandContext(ctx, "tmux", "capture-pane", "-p", "-t", string(handle))
	out, err := h.cmdExec.Output(captureCmd)
	if err != nil {
		return "", fmt.Errorf("tmux capture-pane %s: %w", handle, err)
	}
	return string(out), nil
}

// ServerVersion reports the tmux version string, e.g. "tmux 3.4".
func (h *Host) ServerVersion(ctx context.Context) (string, error) {
	versionCmd := exec.CommandContext(ctx, "tmux", "-V")
	out, err := h.cmdExec.Output(versionCmd)
	if err != nil {
		return "", fmt.Errorf("tmux -V: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// InsideTmux reports whether the current process runs inside a tmux client.
func InsideTmux() bool {
	return os.Getenv("TMUX") != ""
}

func parsePaneLine(line string) (navigator.Entry, bool, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 9 {
		return navigator.Entry{}, false, fmt.Errorf("unexpected list-panes line %q", line)
	}

	windowActive := fields[1] == "1"
	paneActive := fields[2] == "1"

	var bounds navigator.Rect
	if windowActive {
		coords := make([]int, 4)
		for i, raw := range fields[3:7] {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return navigator.Entry{}, false, fmt.Errorf("bad pane coordinate %q in %q", raw, line)
			}
			coords[i] = n + 1
		}
		bounds = navigator.Rect{Left: coords[0], Top: coords[1], Right: coords[2], Bottom: coords[3]}
	}

	entry := navigator.Entry{
		Handle:   navigator.Handle(fields[0]),
		Document: navigator.Document(fields[7] + ":" + fields[8]),
		Bounds:   bounds,
	}
	return entry, windowActive && paneActive, nil
}
