package keys

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/kastheco/tabhop/navigator"
)

type KeyName int

const (
	KeyLeft KeyName = iota
	KeyRight
	KeyUp
	KeyDown
	KeyPrev
	KeyNext

	KeyActivate // confirm the current focus and leave the picker
	KeyRefresh  // re-capture the pane snapshot
	KeyCopy     // copy the focused pane's target to the clipboard
	KeyHelp     // toggle the help footer
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map of key string to KeyName.
// The TOML keymap may override the direction entries via ApplyOverrides.
var GlobalKeyStringsMap = map[string]KeyName{
	"left":  KeyLeft,
	"h":     KeyLeft,
	"right": KeyRight,
	"l":     KeyRight,
	"up":    KeyUp,
	"k":     KeyUp,
	"down":  KeyDown,
	"j":     KeyDown,
	"p":     KeyPrev,
	"n":     KeyNext,
	"enter": KeyActivate,
	"r":     KeyRefresh,
	"c":     KeyCopy,
	"?":     KeyHelp,
	"q":     KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	KeyRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyPrev: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "prev"),
	),
	KeyNext: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next"),
	),
	KeyActivate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "done"),
	),
	KeyRefresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy target"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

// directionNames maps config keymap command names to KeyName.
var directionNames = map[string]KeyName{
	"left":  KeyLeft,
	"right": KeyRight,
	"up":    KeyUp,
	"down":  KeyDown,
	"prev":  KeyPrev,
	"next":  KeyNext,
}

// ApplyOverrides returns a key-string map with the user's keymap applied on
// top of the defaults. Unknown command names are ignored; the global maps
// stay untouched.
func ApplyOverrides(keymap map[string]string) map[string]KeyName {
	merged := make(map[string]KeyName, len(GlobalKeyStringsMap))
	for k, v := range GlobalKeyStringsMap {
		merged[k] = v
	}
	for command, keyStr := range keymap {
		name, ok := directionNames[command]
		if !ok || keyStr == "" {
			continue
		}
		merged[keyStr] = name
	}
	return merged
}

// Direction maps a direction KeyName to its navigator.Direction.
func Direction(k KeyName) (navigator.Direction, bool) {
	switch k {
	case KeyLeft:
		return navigator.DirLeft, true
	case KeyRight:
		return navigator.DirRight, true
	case KeyUp:
		return navigator.DirUp, true
	case KeyDown:
		return navigator.DirDown, true
	case KeyPrev:
		return navigator.DirPrev, true
	case KeyNext:
		return navigator.DirNext, true
	}
	return 0, false
}
