package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

var previewPaneStyle = lipgloss.NewStyle().
	Foreground(ColorText)

var previewTitleStyle = lipgloss.NewStyle().
	Foreground(ColorSubtle).
	Bold(true)

// PanePreview shows the captured content of the pane a pending jump would
// land on, truncated to fit its box.
type PanePreview struct {
	width  int
	height int

	title   string
	content string
}

func NewPanePreview() *PanePreview {
	return &PanePreview{}
}

func (p *PanePreview) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetContent replaces the preview text. title names the pane being shown;
// content is the raw capture and may contain escape sequences.
func (p *PanePreview) SetContent(title, content string) {
	p.title = title
	p.content = ansi.Strip(content)
}

func (p *PanePreview) String() string {
	if p.width == 0 || p.height == 0 {
		return ""
	}

	// One line for the title, the rest for content.
	available := p.height - 1
	lines := strings.Split(p.content, "\n")

	if available > 0 {
		if len(lines) > available {
			lines = lines[:available-1]
			lines = append(lines, "…")
		} else {
			padding := available - len(lines)
			lines = append(lines, make([]string, padding)...)
		}
	}

	for i, line := range lines {
		lines[i] = truncate.StringWithTail(line, uint(p.width), "…")
	}

	title := truncate.StringWithTail(p.title, uint(p.width), "…")
	body := strings.Join(lines, "\n")

	return lipgloss.JoinVertical(lipgloss.Left,
		previewTitleStyle.Render(title),
		previewPaneStyle.Width(p.width).Render(body),
	)
}
