package component

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/leighmacdonald/tirek/internal/ui/model"
	"github.com/leighmacdonald/tirek/internal/ui/styles"
)

const tabSeparator = "  "

// RenderBar draws a tab bar exactly width cells wide. When the titles do not all fit only the
// selected tab is kept; if even that is too wide its padding is dropped, and finally it is cut to width.
func RenderBar(titles []string, sel model.Selection, width int) string {
	if width <= 0 {
		return ""
	}

	tabs := make([]string, len(titles))
	for idx, title := range titles {
		tabs[idx] = " " + title + " "
	}

	selected := sel.Index
	if len(tabs) > 0 {
		selected = model.Clamp(selected, 0, len(tabs)-1)
	}

	if ansi.StringWidth(strings.Join(tabs, tabSeparator)) > width {
		tab := tabs[selected]
		if ansi.StringWidth(tab) > width {
			tab = tab[1 : len(tab)-1]
		}

		if ansi.StringWidth(tab) > width {
			tab = ansi.Truncate(tab, width, "")
		}

		tabs = []string{tab}
		selected = 0
	}

	var bar strings.Builder
	bar.WriteString(styles.BarBase)

	used := 0
	for idx, tab := range tabs {
		if idx > 0 {
			bar.WriteString(tabSeparator)
			used += len(tabSeparator)
		}

		if idx == selected {
			bar.WriteString(styles.Selected(sel.Focused))
			bar.WriteString(tab)
			bar.WriteString(styles.BarRestore)
		} else {
			bar.WriteString(tab)
		}

		used += ansi.StringWidth(tab)
	}

	bar.WriteString(strings.Repeat(" ", max(width-used, 0)))
	bar.WriteString(styles.Reset)

	return bar.String()
}
