package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusBarShowsContext(t *testing.T) {
	s := NewStatusBar()
	s.SetSize(80)
	s.SetData(StatusBarData{
		Host:       "tmux",
		Session:    "work",
		PaneCount:  4,
		FocusPane:  "%1",
		TargetPane: "%3",
	})

	out := s.String()
	assert.Contains(t, out, "tabhop")
	assert.Contains(t, out, "tmux:work")
	assert.Contains(t, out, "4 panes")
	assert.Contains(t, out, "on %1")
	assert.Contains(t, out, "→ %3")
}

func TestStatusBarOmitsEmptyFields(t *testing.T) {
	s := NewStatusBar()
	s.SetSize(80)
	s.SetData(StatusBarData{Host: "tmux"})

	out := s.String()
	assert.Contains(t, out, "tmux")
	assert.NotContains(t, out, "on ")
	assert.NotContains(t, out, "→")
	assert.NotContains(t, out, "panes")
}

func TestStatusBarTooNarrow(t *testing.T) {
	s := NewStatusBar()
	s.SetSize(5)
	assert.Equal(t, "", s.String())
}

func TestPadHeight(t *testing.T) {
	assert.Equal(t, "a\n\n\n", PadHeight("a", 4))
	assert.Equal(t, "a\nb", PadHeight("a\nb", 2))
	assert.Equal(t, "a\nb\nc", PadHeight("a\nb\nc", 1))
}
