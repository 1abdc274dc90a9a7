package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GradientText renders s with a horizontal color gradient from startHex to
// endHex, one color step per rune. Multi-line input gradients each line
// independently so banners stay aligned.
func GradientText(s, startHex, endHex string) string {
	sr, sg, sb := parseHex(startHex)
	er, eg, eb := parseHex(endHex)

	lines := strings.Split(s, "\n")
	out := make([]string, len(lines))
	for li, line := range lines {
		runes := []rune(line)
		if len(runes) == 0 {
			continue
		}
		var b strings.Builder
		for i, r := range runes {
			t := 0.0
			if len(runes) > 1 {
				t = float64(i) / float64(len(runes)-1)
			}
			c := fmt.Sprintf("#%02x%02x%02x",
				lerp(sr, er, t), lerp(sg, eg, t), lerp(sb, eb, t))
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(string(r)))
		}
		out[li] = b.String()
	}
	return strings.Join(out, "\n")
}

func parseHex(hex string) (r, g, b uint8) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	rv, _ := strconv.ParseUint(hex[0:2], 16, 8)
	gv, _ := strconv.ParseUint(hex[2:4], 16, 8)
	bv, _ := strconv.ParseUint(hex[4:6], 16, 8)
	return uint8(rv), uint8(gv), uint8(bv)
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
