package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/tirek/internal/state"
	"github.com/leighmacdonald/tirek/internal/ui/model"
	"github.com/leighmacdonald/tirek/internal/ui/styles"
)

const labelSeparator = ": "

// StatusFields formats the snapshot values in the order of model.StatusTitles.
func StatusFields(snap state.Snapshot) []string {
	return []string{
		fmt.Sprintf("%s (%s)", humanize.Comma(int64(snap.Connections)), humanize.Comma(int64(snap.ConnectionLimit))),
		fmt.Sprintf("%s↓ %s↑", rate(snap.DownloadRate), rate(snap.UploadRate)),
		fmt.Sprintf("%.2f↓ %.2f↑ KB/s", snap.ProtocolDownload/1000, snap.ProtocolUpload/1000),
		humanize.Comma(int64(snap.DHTNodes)),
	}
}

func rate(bytesPerSecond float64) string {
	value, prefix := humanize.ComputeSI(bytesPerSecond)

	return fmt.Sprintf("%.1f %sB/s", value, prefix)
}

// RenderStatusBar draws the bottom bar exactly width cells wide. Fields are dropped down to the
// selected one when they do not fit, and labels are added when room is left: all of them, otherwise
// only the selected field's, otherwise none.
func RenderStatusBar(snap state.Snapshot, sel model.Selection, width int) string {
	if width <= 0 {
		return ""
	}

	fields := StatusFields(snap)
	labels := make([]string, len(model.StatusTitles))
	for idx, title := range model.StatusTitles {
		labels[idx] = title + labelSeparator
	}

	selected := model.Clamp(sel.Index, 0, len(fields)-1)
	used := fieldsWidth(fields)

	if used > width {
		field := fields[selected]
		if ansi.StringWidth(field)+2 > width {
			field = ansi.Truncate(field, max(width-2, 0), "")
		}

		fields = []string{field}
		labels = []string{labels[selected]}
		selected = 0
		used = fieldsWidth(fields)
	}

	allLabels := used
	for _, label := range labels {
		allLabels += ansi.StringWidth(label)
	}
	oneLabel := used + ansi.StringWidth(labels[selected])

	switch {
	case allLabels <= width:
		for idx := range fields {
			fields[idx] = labels[idx] + fields[idx]
		}
		used = allLabels
	case oneLabel <= width:
		fields[selected] = labels[selected] + fields[selected]
		used = oneLabel
	}

	var bar strings.Builder
	for idx, field := range fields {
		if idx > 0 {
			bar.WriteString(tabSeparator)
		}

		if idx == selected {
			bar.WriteString(styles.Field(sel.Focused))
		} else {
			bar.WriteString(styles.StatusField)
		}

		bar.WriteString(" " + field + " ")

		if idx == selected {
			bar.WriteString(styles.StatusField)
		}
	}

	bar.WriteString(strings.Repeat(" ", max(width-used, 0)))
	bar.WriteString(styles.Reset)

	out := bar.String()
	if used > width {
		// Only reachable below two columns, where not even the field padding fits.
		out = ansi.Truncate(out, width, "") + styles.Reset
	}

	return out
}

// fieldsWidth is the width of fields padded with a space on each side and joined by the separator.
func fieldsWidth(fields []string) int {
	total := len(tabSeparator) * max(len(fields)-1, 0)
	for _, field := range fields {
		total += ansi.StringWidth(field) + 2
	}

	return total
}
