package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Bars are drawn in reverse video. The selected tab is cut out of the reverse video with a blue
// background when its bar has focus, or emphasised in bold on blue when the bar only remembers it.
var (
	Accent = ansi.Blue

	BarBase      = ansi.Style{}.Reverse().String()
	BarFocused   = ansi.Style{}.BackgroundColor(Accent).NoReverse().String()
	BarSelected  = ansi.Style{}.Bold().BackgroundColor(Accent).String()
	BarRestore   = ansi.Style{}.Reset().Reverse().String()
	StatusField  = ansi.Style{}.Reset().Reverse().String()
	StatusActive = ansi.Style{}.Reset().BackgroundColor(Accent).String()
	StatusMarked = ansi.Style{}.Reset().Bold().BackgroundColor(Accent).String()
	Reset        = ansi.ResetStyle
)

// Help pane.
var (
	HelpHeading = lipgloss.NewStyle().Bold(true)
	HelpKey     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	HelpDesc    = lipgloss.NewStyle()
	HelpSep     = lipgloss.NewStyle().Faint(true)
)

// Selected returns the style used for the selected tab of a bar.
func Selected(focused bool) string {
	if focused {
		return BarFocused
	}

	return BarSelected
}

// Field returns the style used for the highlighted status bar field.
func Field(focused bool) string {
	if focused {
		return StatusActive
	}

	return StatusMarked
}
