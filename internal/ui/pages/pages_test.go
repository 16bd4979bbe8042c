package pages_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/leighmacdonald/tirek/internal/ui/input"
	"github.com/leighmacdonald/tirek/internal/ui/pages"
	"github.com/stretchr/testify/require"
)

func TestCopyrightLines(t *testing.T) {
	lines := pages.CopyrightLines(false)
	require.Equal(t, "tirek — A torrent client with a terminal user interface", lines[0])
	require.Equal(t, "Copyright © 2014  Mattias Andrée (maandree@member.fsf.org)", lines[1])
	require.Equal(t, "", lines[2])
	require.Len(t, lines, 15)

	ascii := pages.CopyrightLines(true)
	require.Equal(t, "tirek - A torrent client with a terminal user interface", ascii[0])
}

func TestASCIIOnly(t *testing.T) {
	require.False(t, pages.ASCIIOnly("xterm-256color"))
	require.True(t, pages.ASCIIOnly("linux"))
	require.True(t, pages.ASCIIOnly(""))
}

func TestHelpLines(t *testing.T) {
	info := pages.BuildInfo{Version: "v1.0.0", Commit: "0123456789abcdef", Date: "2026-01-01"}
	lines := pages.HelpLines(info, input.Default.Bindings(), true)

	text := ansi.Strip(strings.Join(lines, "\n"))
	require.Contains(t, text, "Keys")
	require.Contains(t, text, "Quit")
	require.Contains(t, text, "ctrl+l")
	require.Contains(t, text, "Redraw screen")
	require.Contains(t, text, "01234567")
	require.NotContains(t, text, "89abcdef")
	require.Contains(t, text, "v1.0.0")
}

func TestPreferenceLines(t *testing.T) {
	lines := pages.PreferenceLines(pages.DefaultPreferences())
	require.Equal(t, "Downloads", lines[0])
	require.Equal(t, "   Allocation (either)", lines[1])
	require.Equal(t, "      Use full allocation (y)", lines[2])
	require.Contains(t, lines, "   Cache size (512 blocks of 16 K)")
	require.Equal(t, "   IPv6 location (/usr/share/GeoIP/GeoIPv6.dat)", lines[len(lines)-1])
}
