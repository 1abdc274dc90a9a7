package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreviewTruncatesLongContent(t *testing.T) {
	p := NewPanePreview()
	p.SetSize(40, 5)
	p.SetContent("%2 zsh", strings.Repeat("line\n", 20))

	out := p.String()
	assert.Contains(t, out, "%2 zsh")
	assert.Contains(t, out, "…")
	lines := strings.Split(out, "\n")
	assert.LessOrEqual(t, len(lines), 5)
}

func TestPreviewPadsShortContent(t *testing.T) {
	p := NewPanePreview()
	p.SetSize(40, 6)
	p.SetContent("%1 vim", "only line")

	lines := strings.Split(p.String(), "\n")
	assert.Len(t, lines, 6)
}

func TestPreviewStripsEscapeSequences(t *testing.T) {
	p := NewPanePreview()
	p.SetSize(40, 4)
	p.SetContent("%1 vim", "\x1b[31mred\x1b[0m text")

	assert.Contains(t, p.String(), "red text")
}

func TestPreviewZeroSize(t *testing.T) {
	p := NewPanePreview()
	p.SetContent("%1 vim", "content")
	assert.Equal(t, "", p.String())
}
