// Package navigator implements pane-group focus navigation: given a snapshot
// of pane rectangles and a direction, it picks the destination pane with
// wraparound and asks the host to focus it.
//
// The selection pipeline (capture, filter, sort, locate, step, activate)
// runs fresh per invocation, so it never goes stale when panes are opened,
// closed, or moved between commands.
package navigator

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Provider is the host boundary the navigator operates against. A host
// supplies pane geometry on demand and focuses panes by handle; the
// navigator itself never talks to the host directly.
type Provider interface {
	// CaptureSnapshot returns all currently open panes with their bounds and
	// the handle of the focused pane. Panes that are not the visibly focused
	// pane of their group report degenerate bounds at the origin.
	CaptureSnapshot(ctx context.Context) (Snapshot, error)

	// Activate gives input focus to the pane with the given handle. A stale
	// handle returns an error; it must not panic or retry.
	Activate(ctx context.Context, h Handle) error
}

// Jump describes one completed navigation: where focus was, where it went,
// and which command moved it. From is the zero Entry when no pane held focus
// at capture time.
type Jump struct {
	From      Entry
	To        Entry
	Direction Direction
}

// Navigator executes navigation commands against a Provider. It holds no
// mutable state; invocations are independent.
type Navigator struct {
	provider Provider
}

// New returns a Navigator bound to the given provider. The provider is
// required; construction fails fast rather than letting a nil host surface
// mid-command.
func New(provider Provider) (*Navigator, error) {
	if provider == nil {
		return nil, errors.New("navigator: provider is required")
	}
	return &Navigator{provider: provider}, nil
}

// Navigate runs one command: capture a snapshot, compute the destination for
// dir, and activate it. When the candidate list is empty the command is a
// no-op and Navigate returns ok=false with a nil error.
func (n *Navigator) Navigate(ctx context.Context, dir Direction) (Jump, bool, error) {
	snap, err := n.provider.CaptureSnapshot(ctx)
	if err != nil {
		return Jump{}, false, fmt.Errorf("capture snapshot: %w", err)
	}

	target, ok := Plan(snap, dir)
	if !ok {
		return Jump{}, false, nil
	}

	if err := n.provider.Activate(ctx, target.Handle); err != nil {
		return Jump{}, false, fmt.Errorf("activate %s: %w", target.Handle, err)
	}

	from, _ := snap.ActiveEntry()
	return Jump{From: from, To: target, Direction: dir}, true, nil
}

// Plan computes the destination entry for dir without side effects. It
// returns false when the candidate list is empty.
func Plan(snap Snapshot, dir Direction) (Entry, bool) {
	candidates := Candidates(snap, dir)
	if len(candidates) == 0 {
		return Entry{}, false
	}

	// Locate the focused pane by handle identity. Document identity is not
	// enough: a document split across two panes appears twice, and a
	// document search would stick at the wrong duplicate. When the active
	// handle is absent (nothing focused, or the focused pane was filtered
	// out), fall back to index 0 and jump relative to the first candidate.
	current := 0
	if snap.Active != "" {
		for i, e := range candidates {
			if e.Handle == snap.Active {
				current = i
				break
			}
		}
	}

	offset := -1
	if dir.forward() {
		offset = 1
	}
	count := len(candidates)
	next := ((current+offset)%count + count) % count
	return candidates[next], true
}

// Candidates returns dir's ordered candidate list: validity-filtered
// entries that pass the direction family's predicate, stable-sorted by
// (Left, Top). Left and right share one list, as do up/down and prev/next.
func Candidates(snap Snapshot, dir Direction) []Entry {
	valid := validEntries(snap)
	ref, hasRef := snap.ActiveEntry()

	var kept []Entry
	for _, e := range valid {
		if keepEntry(dir.family(), e, ref, hasRef) {
			kept = append(kept, e)
		}
	}

	// Stable sort: ties on Left break on Top, and entries with identical
	// rectangles keep their snapshot order.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Bounds.Left != kept[j].Bounds.Left {
			return kept[i].Bounds.Left < kept[j].Bounds.Left
		}
		return kept[i].Bounds.Top < kept[j].Bounds.Top
	})
	return kept
}

// validEntries drops degenerate placeholder entries. A snapshot holding a
// single pane keeps it regardless, so a lone pane stays navigable even when
// the host reported placeholder bounds for it.
func validEntries(snap Snapshot) []Entry {
	if len(snap.Entries) == 1 {
		return snap.Entries
	}
	var valid []Entry
	for _, e := range snap.Entries {
		if !e.Bounds.IsDegenerate() {
			valid = append(valid, e)
		}
	}
	return valid
}

// keepEntry is the per-family candidate predicate, evaluated against the
// focused pane. Horizontal navigation skips panes stacked in the focused
// pane's own column (same Left) unless they show the same document; vertical
// navigation keeps only that column, again with the same-document exception;
// sequential navigation keeps everything.
func keepEntry(f family, e, ref Entry, hasRef bool) bool {
	if !hasRef {
		return true
	}
	switch f {
	case familyHorizontal:
		return e.Document == ref.Document || e.Bounds.Left != ref.Bounds.Left
	case familyVertical:
		return e.Document == ref.Document || e.Bounds.Left == ref.Bounds.Left
	default:
		return true
	}
}
