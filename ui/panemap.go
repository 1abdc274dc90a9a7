package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"github.com/kastheco/tabhop/navigator"
)

// PaneMap draws the window's pane layout as a grid of bordered boxes, scaled
// to the component size. The focused pane and the pending jump target get
// distinct border colors; every box is zone-marked for mouse hit detection.
type PaneMap struct {
	width  int
	height int

	entries   []navigator.Entry
	activeIdx int
	targetIdx int
}

func NewPaneMap() *PaneMap {
	return &PaneMap{activeIdx: -1, targetIdx: -1}
}

func (m *PaneMap) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetEntries replaces the rendered candidate set. activeIdx is the pane that
// currently holds focus, targetIdx the pane a pending jump would land on;
// either may be -1.
func (m *PaneMap) SetEntries(entries []navigator.Entry, activeIdx, targetIdx int) {
	m.entries = entries
	m.activeIdx = activeIdx
	m.targetIdx = targetIdx
}

// fillerRune marks the trailing cell of a double-width rune. Filler cells
// keep the owner grid contiguous but emit nothing when the canvas renders.
const fillerRune = '\x00'

// cellOwner maps canvas cells back to the entry drawn there, -1 for none.
type canvas struct {
	runes [][]rune
	owner [][]int
}

func newCanvas(width, height int) *canvas {
	c := &canvas{
		runes: make([][]rune, height),
		owner: make([][]int, height),
	}
	for y := 0; y < height; y++ {
		c.runes[y] = make([]rune, width)
		c.owner[y] = make([]int, width)
		for x := 0; x < width; x++ {
			c.runes[y][x] = ' '
			c.owner[y][x] = -1
		}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, owner int) {
	if y < 0 || y >= len(c.runes) || x < 0 || x >= len(c.runes[y]) {
		return
	}
	c.runes[y][x] = r
	c.owner[y][x] = owner
}

func (m *PaneMap) String() string {
	if m.width < 4 || m.height < 3 || len(m.entries) == 0 {
		return strings.Repeat("\n", max(0, m.height-1))
	}

	// Bounds are in terminal cells; scale them into the component box.
	maxRight, maxBottom := 1, 1
	for _, e := range m.entries {
		if e.Bounds.Right > maxRight {
			maxRight = e.Bounds.Right
		}
		if e.Bounds.Bottom > maxBottom {
			maxBottom = e.Bounds.Bottom
		}
	}

	scaleX := func(v int) int {
		x := v * (m.width - 1) / maxRight
		return min(x, m.width-1)
	}
	scaleY := func(v int) int {
		y := v * (m.height - 1) / maxBottom
		return min(y, m.height-1)
	}

	cv := newCanvas(m.width, m.height)
	type labelPos struct{ x, y, idx, maxW int }
	labels := make([]labelPos, 0, len(m.entries))

	for i, e := range m.entries {
		x0, y0 := scaleX(e.Bounds.Left), scaleY(e.Bounds.Top)
		x1, y1 := scaleX(e.Bounds.Right), scaleY(e.Bounds.Bottom)
		if x1 <= x0 {
			x1 = x0 + 1
		}
		if y1 <= y0 {
			y1 = y0 + 1
		}

		for x := x0; x <= x1; x++ {
			cv.set(x, y0, '─', i)
			cv.set(x, y1, '─', i)
		}
		for y := y0; y <= y1; y++ {
			cv.set(x0, y, '│', i)
			cv.set(x1, y, '│', i)
		}
		cv.set(x0, y0, '┌', i)
		cv.set(x1, y0, '┐', i)
		cv.set(x0, y1, '└', i)
		cv.set(x1, y1, '┘', i)

		if y1-y0 >= 2 && x1-x0 >= 3 {
			labels = append(labels, labelPos{x: x0 + 1, y: (y0 + y1) / 2, idx: i, maxW: x1 - x0 - 1})
		}
	}

	// Labels overwrite the interior after all borders are drawn so shared
	// edges between adjacent panes don't clip them.
	labelText := make(map[int]string, len(labels))
	for _, lp := range labels {
		e := m.entries[lp.idx]
		text := runewidth.Truncate(string(e.Handle)+" "+string(e.Document), lp.maxW, "…")
		labelText[lp.idx] = text
		x := lp.x
		for _, r := range text {
			cv.set(x, lp.y, r, lp.idx)
			// Double-width runes occupy a second cell; fill it so the owner
			// run stays contiguous and no stale border rune shows through.
			for dx := 1; dx < runewidth.RuneWidth(r); dx++ {
				cv.set(x+dx, lp.y, fillerRune, lp.idx)
			}
			x += runewidth.RuneWidth(r)
		}
	}

	return m.render(cv, labelText)
}

func (m *PaneMap) render(cv *canvas, labelText map[int]string) string {
	styleFor := func(owner int) lipgloss.Style {
		switch owner {
		case m.targetIdx:
			return lipgloss.NewStyle().Foreground(ColorPaneTarget).Bold(true)
		case m.activeIdx:
			return lipgloss.NewStyle().Foreground(ColorPaneActive)
		default:
			return lipgloss.NewStyle().Foreground(ColorPaneDim)
		}
	}

	marked := make(map[int]bool, len(labelText))
	var out strings.Builder
	for y := 0; y < m.height; y++ {
		x := 0
		for x < m.width {
			owner := cv.owner[y][x]
			run := x
			for run < m.width && cv.owner[y][run] == owner {
				run++
			}
			var sb strings.Builder
			for i := x; i < run; i++ {
				if cv.runes[y][i] != fillerRune {
					sb.WriteRune(cv.runes[y][i])
				}
			}
			text := sb.String()
			styled := styleFor(owner).Render(text)
			// Mark the run containing the pane's label once per pane.
			if owner >= 0 && !marked[owner] && labelText[owner] != "" &&
				strings.Contains(text, labelText[owner]) {
				styled = zone.Mark(PaneZoneID(owner), styled)
				marked[owner] = true
			}
			out.WriteString(styled)
			x = run
		}
		if y < m.height-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
