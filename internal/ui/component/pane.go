package component

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/leighmacdonald/tirek/internal/ui/styles"
	"github.com/muesli/reflow/truncate"
)

// MaxScroll is the largest first-line offset that still fills rows lines of a text total lines long.
func MaxScroll(total int, rows int) int {
	return max(total-max(rows, 0), 0)
}

// RenderPane returns exactly rows lines of text starting at offset, each cut or padded to width cells.
// Missing lines are blank.
func RenderPane(lines []string, offset int, rows int, width int) []string {
	if rows <= 0 || width <= 0 {
		return nil
	}

	offset = min(max(offset, 0), MaxScroll(len(lines), rows))
	out := make([]string, rows)

	for row := range rows {
		text := ""
		if offset+row < len(lines) {
			text = lines[offset+row]
		}

		out[row] = fitLine(text, width)
	}

	return out
}

func fitLine(text string, width int) string {
	line := truncate.String(text, uint(width)) //nolint:gosec
	pad := width - ansi.StringWidth(line)

	return line + styles.Reset + strings.Repeat(" ", max(pad, 0))
}
