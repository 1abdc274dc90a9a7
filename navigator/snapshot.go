package navigator

// Handle is an opaque identifier for one open pane. Handles are compared
// only for equality, never ordered.
type Handle string

// Document identifies the logical document a pane displays. Two panes may
// share a Document (the same file split across two panes) while keeping
// distinct Handles.
type Document string

// Rect is a pane's bounding rectangle in host cell coordinates.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// IsDegenerate reports whether the rect is the origin placeholder used for
// panes that are not the visibly focused pane of their group. Hosts reserve
// the origin for placeholders; real panes always report Left or Top >= 1.
func (r Rect) IsDegenerate() bool {
	return r.Left == 0 && r.Top == 0
}

// Entry is one pane in a snapshot. Immutable once captured.
type Entry struct {
	Handle   Handle
	Document Document
	Bounds   Rect
}

// Snapshot is the set of panes visible at one command invocation, plus the
// handle of the pane holding input focus (empty when none does). A snapshot
// is captured fresh per invocation and discarded afterwards; the navigator
// keeps no state between invocations.
type Snapshot struct {
	Entries []Entry
	Active  Handle
}

// ActiveEntry returns the entry whose handle is the snapshot's active handle.
func (s Snapshot) ActiveEntry() (Entry, bool) {
	if s.Active == "" {
		return Entry{}, false
	}
	for _, e := range s.Entries {
		if e.Handle == s.Active {
			return e, true
		}
	}
	return Entry{}, false
}
