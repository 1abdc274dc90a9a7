package ui

import "fmt"

// Zone ID constants for bubblezone hit detection.
// Used both in render paths (zone.Mark) and input paths (zone.Get().InBounds).
const (
	ZonePaneMap   = "zone-pane-map"
	ZonePreview   = "zone-preview"
	ZoneStatusBar = "zone-status-bar"
)

// PaneZoneID returns the zone ID for a pane-map cell by its candidates-slice index.
func PaneZoneID(idx int) string {
	return fmt.Sprintf("zone-pane-%d", idx)
}
