package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusBarData holds the contextual information displayed in the status bar.
type StatusBarData struct {
	Host       string // backend name, e.g. "tmux"
	Session    string // tmux session name, empty when unknown
	PaneCount  int
	FocusPane  string // target of the currently focused pane
	TargetPane string // target of the pending jump, empty when none
}

// StatusBar is the top status bar component.
type StatusBar struct {
	width int
	data  StatusBarData
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

func (s *StatusBar) SetSize(width int) {
	s.width = width
}

func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

var statusBarStyle = lipgloss.NewStyle().
	Background(ColorSurface).
	Foreground(ColorText).
	Padding(0, 1)

var statusBarSepStyle = lipgloss.NewStyle().
	Foreground(ColorOverlay).
	Background(ColorSurface)

var statusBarHostStyle = lipgloss.NewStyle().
	Foreground(ColorFoam).
	Background(ColorSurface)

var statusBarFocusStyle = lipgloss.NewStyle().
	Foreground(ColorText).
	Background(ColorSurface)

var statusBarTargetStyle = lipgloss.NewStyle().
	Foreground(ColorIris).
	Background(ColorSurface).
	Bold(true)

const statusBarSep = " │ "

func (s *StatusBar) String() string {
	if s.width < 10 {
		return ""
	}

	parts := make([]string, 0, 5)
	parts = append(parts, GradientText("tabhop", GradientStart, GradientEnd))

	if s.data.Host != "" {
		host := s.data.Host
		if s.data.Session != "" {
			host += ":" + s.data.Session
		}
		parts = append(parts, statusBarHostStyle.Render(host))
	}

	if s.data.PaneCount > 0 {
		parts = append(parts, statusBarFocusStyle.Render(fmt.Sprintf("%d panes", s.data.PaneCount)))
	}

	if s.data.FocusPane != "" {
		parts = append(parts, statusBarFocusStyle.Render("on "+s.data.FocusPane))
	}

	if s.data.TargetPane != "" {
		parts = append(parts, statusBarTargetStyle.Render("→ "+s.data.TargetPane))
	}

	sep := statusBarSepStyle.Render(statusBarSep)
	content := strings.Join(parts, sep)

	return statusBarStyle.Width(s.width).Render(content)
}
