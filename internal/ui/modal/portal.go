package modal

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayAt draws overlay on top of base with its top-left corner at cell
// (x, y). Base is padded to width x height first so the overlay always has
// somewhere to land.
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := fitLines(splitLines(base), height)
	for i, line := range splitLines(overlay) {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		target := padRight(baseLines[row], width)

		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(target, x+ansi.StringWidth(line), "")

		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

// fitLines pads lines with empty rows up to height.
func fitLines(lines []string, height int) []string {
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// padRight pads s with spaces so its visual width is at least width.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
