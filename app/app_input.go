package app

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/kastheco/tabhop/history"
	"github.com/kastheco/tabhop/keys"
	"github.com/kastheco/tabhop/log"
	"github.com/kastheco/tabhop/navigator"
	"github.com/kastheco/tabhop/ui"
)

func (m *picker) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
		return m, tea.Quit
	}

	name, ok := m.keymap[msg.String()]
	if !ok {
		return m, nil
	}

	if dir, ok := keys.Direction(name); ok {
		return m.moveTarget(dir)
	}

	switch name {
	case keys.KeyActivate:
		return m, m.activateCmd()
	case keys.KeyRefresh:
		return m, m.captureCmd()
	case keys.KeyCopy:
		if m.targetIdx >= 0 {
			if err := clipboard.WriteAll(string(m.candidates[m.targetIdx].Handle)); err != nil {
				log.WarningLog.Printf("clipboard write failed: %v", err)
			}
		}
		return m, nil
	case keys.KeyHelp:
		m.showHelp = !m.showHelp
		return m, nil
	case keys.KeyQuit:
		return m, tea.Quit
	}

	return m, nil
}

// moveTarget shifts the highlighted target the same way a direct jump command
// would move focus, by planning from the current target instead of the pane
// that actually holds focus.
func (m *picker) moveTarget(dir navigator.Direction) (tea.Model, tea.Cmd) {
	if m.targetIdx < 0 {
		return m, nil
	}

	snap := m.snapshot
	snap.Active = m.candidates[m.targetIdx].Handle
	entry, ok := navigator.Plan(snap, dir)
	if !ok {
		return m, nil
	}

	for i, e := range m.candidates {
		if e.Handle == entry.Handle {
			m.targetIdx = i
			break
		}
	}
	m.syncComponents()
	return m, m.previewCmd(entry.Handle)
}

// activateCmd focuses the target pane, records the jump, and quits.
func (m *picker) activateCmd() tea.Cmd {
	if m.targetIdx < 0 || m.targetIdx == m.focusIdx {
		return tea.Quit
	}
	target := m.candidates[m.targetIdx]

	return func() tea.Msg {
		if err := m.host.Activate(m.ctx, target.Handle); err != nil {
			log.ErrorLog.Printf("activate %s: %v", target.Handle, err)
			return tea.Quit()
		}

		jump := history.Jump{
			Direction:  "pick",
			ToPane:     string(target.Handle),
			ToDocument: string(target.Document),
		}
		if m.focusIdx >= 0 {
			from := m.candidates[m.focusIdx]
			jump.FromPane = string(from.Handle)
			jump.FromDocument = string(from.Document)
		}
		m.recorder.Record(jump)

		return tea.Quit()
	}
}

func (m *picker) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	for i := range m.candidates {
		if zone.Get(ui.PaneZoneID(i)).InBounds(msg) {
			if i == m.targetIdx {
				// Second click on the highlighted pane confirms the jump.
				return m, m.activateCmd()
			}
			m.targetIdx = i
			m.syncComponents()
			return m, m.previewCmd(m.candidates[i].Handle)
		}
	}
	return m, nil
}

// helpLine renders the bottom key hint rail.
func (m *picker) helpLine() string {
	names := []keys.KeyName{keys.KeyActivate, keys.KeyRefresh, keys.KeyCopy, keys.KeyQuit}
	if m.showHelp {
		names = []keys.KeyName{
			keys.KeyLeft, keys.KeyRight, keys.KeyUp, keys.KeyDown,
			keys.KeyPrev, keys.KeyNext,
			keys.KeyActivate, keys.KeyRefresh, keys.KeyCopy, keys.KeyHelp, keys.KeyQuit,
		}
	}

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, helpEntry(keys.GlobalkeyBindings[name]))
	}
	return strings.Join(parts, "  ")
}

func helpEntry(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}
