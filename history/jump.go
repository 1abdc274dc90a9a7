// Package history records completed navigation jumps to a local SQLite
// database so users can see where focus has been bouncing.
package history

import "time"

// Jump is a single recorded navigation.
type Jump struct {
	ID        int64
	Timestamp time.Time
	// Direction is the command that moved focus (left, right, up, down,
	// prev, next).
	Direction string
	// FromPane and ToPane are host pane handles. FromPane is empty when no
	// pane held focus at capture time.
	FromPane string
	ToPane   string
	// FromDocument and ToDocument are the logical document identities shown
	// by the source and destination panes.
	FromDocument string
	ToDocument   string
}
