package ui

import "strings"

// PadHeight extends s with blank lines up to height so bubbletea's alt-screen
// renderer doesn't leave stale content below the rendered view.
func PadHeight(s string, height int) string {
	if height <= 0 {
		return s
	}
	have := strings.Count(s, "\n") + 1
	if have >= height {
		return s
	}
	return s + strings.Repeat("\n", height-have)
}
