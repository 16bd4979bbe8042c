package pages

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/leighmacdonald/tirek/internal/ui/styles"
)

// Author is a copyright holder listed in the help pane.
type Author struct {
	Years string
	Name  string
	Email string
}

var Authors = []Author{ //nolint:gochecknoglobals
	{Years: "2014", Name: "Mattias Andrée", Email: "maandree@member.fsf.org"},
}

const copyrightText = `tirek — A torrent client with a terminal user interface
Copyright ©

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.`

// BuildInfo is shown at the end of the help text.
type BuildInfo struct {
	Version    string
	Commit     string
	Date       string
	ConfigPath string
	LogPath    string
}

// ASCIIOnly reports whether the terminal named by $TERM should be kept to plain ASCII punctuation.
func ASCIIOnly(term string) bool {
	return !strings.HasPrefix(term, "xterm")
}

// CopyrightLines returns the copyright blob, one entry per line, with the author line filled in.
func CopyrightLines(ascii bool) []string {
	text := copyrightText
	if ascii {
		text = strings.ReplaceAll(text, "—", "-")
	}

	lines := strings.Split(text, "\n")
	authors := make([]string, len(Authors))
	for idx, author := range Authors {
		authors[idx] = fmt.Sprintf("Copyright © %s  %s (%s)", author.Years, author.Name, author.Email)
	}

	out := make([]string, 0, len(lines)+len(authors))
	out = append(out, lines[0])
	out = append(out, authors...)

	return append(out, lines[2:]...)
}

// HelpLines builds the full text of the help pane.
func HelpLines(info BuildInfo, bindings []key.Binding, ascii bool) []string {
	lines := CopyrightLines(ascii)

	helpView := help.New()
	helpView.Styles.FullKey = styles.HelpKey
	helpView.Styles.FullDesc = styles.HelpDesc
	helpView.Styles.FullSeparator = styles.HelpSep

	lines = append(lines, "", styles.HelpHeading.Render("Keys"))
	lines = append(lines, strings.Split(helpView.FullHelpView([][]key.Binding{bindings}), "\n")...)

	commit := info.Commit
	if len(commit) > 8 {
		commit = commit[0:8]
	}

	lines = append(lines, "", styles.HelpHeading.Render("Build"),
		detailRow("Version", info.Version),
		detailRow("Commit", commit),
		detailRow("Date", info.Date),
		detailRow("Config Path", info.ConfigPath),
		detailRow("Log Path", info.LogPath),
	)

	return lines
}

func detailRow(label string, value string) string {
	return fmt.Sprintf("%-12s %s", label, value)
}
