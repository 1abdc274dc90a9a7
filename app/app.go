package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/kastheco/tabhop/config"
	"github.com/kastheco/tabhop/history"
	"github.com/kastheco/tabhop/host/tmux"
	"github.com/kastheco/tabhop/internal/lockfile"
	"github.com/kastheco/tabhop/keys"
	"github.com/kastheco/tabhop/log"
	"github.com/kastheco/tabhop/navigator"
	"github.com/kastheco/tabhop/ui"
)

// paneHost is the slice of the tmux host the picker needs. Tests substitute
// a fake.
type paneHost interface {
	navigator.Provider
	CapturePane(ctx context.Context, h navigator.Handle) (string, error)
}

// Run is the main entrypoint into the interactive picker.
func Run(ctx context.Context, cfg *config.Config) error {
	configDir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	release, err := lockfile.Acquire(filepath.Join(configDir, "tabhop.lock"))
	if err != nil {
		return err
	}
	defer release()

	recorder := history.NopRecorder()
	if cfg.IsHistoryEnabled() {
		dbPath, err := config.HistoryDBPath()
		if err == nil {
			if r, err := history.NewSQLiteRecorder(dbPath); err == nil {
				recorder = r
			} else {
				log.WarningLog.Printf("history disabled: %v", err)
			}
		}
	}
	defer recorder.Close()

	// Set the terminal's default background to the theme base color so every
	// ANSI reset and unstyled cell falls back to it instead of black. Light
	// terminals are left alone.
	if ui.HasDarkBackground() {
		restore := ui.SetTerminalBackground(string(ui.ColorBase))
		defer restore()
	}

	zone.NewGlobal()
	p := tea.NewProgram(
		newPicker(ctx, cfg, tmux.NewHost(), recorder),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}

type snapshotMsg struct {
	snapshot navigator.Snapshot
	err      error
}

type previewMsg struct {
	handle  navigator.Handle
	content string
}

type previewTickMsg struct{}

// picker is the bubbletea model for the interactive pane picker.
type picker struct {
	ctx context.Context

	host     paneHost
	recorder history.Recorder
	keymap   map[string]keys.KeyName

	snapshot   navigator.Snapshot
	candidates []navigator.Entry
	// focusIdx is the pane holding focus when the picker opened, targetIdx
	// the pane a confirm would jump to. Both index candidates, -1 when unset.
	focusIdx  int
	targetIdx int

	paneMap   *ui.PaneMap
	preview   *ui.PanePreview
	statusBar *ui.StatusBar

	width    int
	height   int
	showHelp bool
	err      error
}

func newPicker(ctx context.Context, cfg *config.Config, host paneHost, recorder history.Recorder) *picker {
	return &picker{
		ctx:       ctx,
		host:      host,
		recorder:  recorder,
		keymap:    keys.ApplyOverrides(cfg.Keymap),
		focusIdx:  -1,
		targetIdx: -1,
		paneMap:   ui.NewPaneMap(),
		preview:   ui.NewPanePreview(),
		statusBar: ui.NewStatusBar(),
	}
}

func (m *picker) Init() tea.Cmd {
	return tea.Batch(m.captureCmd(), m.previewTickCmd())
}

func (m *picker) captureCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.host.CaptureSnapshot(m.ctx)
		return snapshotMsg{snapshot: snap, err: err}
	}
}

func (m *picker) previewCmd(h navigator.Handle) tea.Cmd {
	return func() tea.Msg {
		content, err := m.host.CapturePane(m.ctx, h)
		if err != nil {
			log.WarningLog.Printf("preview capture failed for %s: %v", h, err)
			return previewMsg{handle: h}
		}
		return previewMsg{handle: h, content: content}
	}
}

// previewTickCmd refreshes the target pane's preview so live output stays
// visible while the picker is open.
func (m *picker) previewTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return previewTickMsg{}
	})
}

func (m *picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case snapshotMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.setSnapshot(msg.snapshot)
		if m.targetIdx >= 0 {
			return m, m.previewCmd(m.candidates[m.targetIdx].Handle)
		}
		return m, nil

	case previewMsg:
		if m.targetIdx >= 0 && m.candidates[m.targetIdx].Handle == msg.handle {
			m.preview.SetContent(paneTitle(m.candidates[m.targetIdx]), msg.content)
		}
		return m, nil

	case previewTickMsg:
		if m.targetIdx < 0 {
			return m, m.previewTickCmd()
		}
		return m, tea.Batch(m.previewCmd(m.candidates[m.targetIdx].Handle), m.previewTickCmd())

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// setSnapshot replaces the candidate set. Candidates come out in reading
// order, which is also the order prev/next cycles through.
func (m *picker) setSnapshot(snap navigator.Snapshot) {
	m.snapshot = snap
	m.candidates = navigator.Candidates(snap, navigator.DirNext)

	m.focusIdx = -1
	for i, e := range m.candidates {
		if e.Handle == snap.Active {
			m.focusIdx = i
			break
		}
	}

	// Keep the highlighted target across refreshes when it still exists.
	prevTarget := navigator.Handle("")
	if m.targetIdx >= 0 && m.targetIdx < len(m.candidates) {
		prevTarget = m.candidates[m.targetIdx].Handle
	}
	m.targetIdx = m.focusIdx
	for i, e := range m.candidates {
		if prevTarget != "" && e.Handle == prevTarget {
			m.targetIdx = i
			break
		}
	}
	if m.targetIdx < 0 && len(m.candidates) > 0 {
		m.targetIdx = 0
	}

	m.syncComponents()
}

func (m *picker) syncComponents() {
	m.paneMap.SetEntries(m.candidates, m.focusIdx, m.targetIdx)

	data := ui.StatusBarData{
		Host:      "tmux",
		PaneCount: len(m.candidates),
	}
	if m.focusIdx >= 0 {
		data.FocusPane = string(m.candidates[m.focusIdx].Handle)
	}
	if m.targetIdx >= 0 && m.targetIdx != m.focusIdx {
		data.TargetPane = string(m.candidates[m.targetIdx].Handle)
	}
	m.statusBar.SetData(data)
}

func (m *picker) layout() {
	m.statusBar.SetSize(m.width)

	contentHeight := m.height - 2 // status bar + help line
	if contentHeight < 1 {
		contentHeight = 1
	}
	mapWidth := m.width * 3 / 5
	previewWidth := m.width - mapWidth - 1
	if previewWidth < 0 {
		previewWidth = 0
	}
	m.paneMap.SetSize(mapWidth, contentHeight)
	m.preview.SetSize(previewWidth, contentHeight)
}

func (m *picker) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n", m.err)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		m.paneMap.String(),
		" ",
		m.preview.String(),
	)

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.statusBar.String(),
		content,
		m.helpLine(),
	)

	return zone.Scan(ui.PadHeight(view, m.height))
}

func paneTitle(e navigator.Entry) string {
	return string(e.Handle) + " " + string(e.Document)
}
