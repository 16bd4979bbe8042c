package component_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/leighmacdonald/tirek/internal/ui/component"
	"github.com/leighmacdonald/tirek/internal/ui/model"
	"github.com/leighmacdonald/tirek/internal/ui/styles"
	"github.com/stretchr/testify/require"
)

func TestRenderBarWidth(t *testing.T) {
	selections := []model.Selection{
		{Focused: true, Index: 0},
		{Focused: false, Index: 1},
		{Focused: true, Index: 3},
	}

	for _, titles := range [][]string{model.TopTabs, model.MiddleTabs} {
		for _, sel := range selections {
			for width := 1; width <= 120; width++ {
				out := component.RenderBar(titles, sel, width)
				require.Equal(t, width, ansi.StringWidth(out), "width %d sel %+v", width, sel)
			}
		}
	}

	require.Empty(t, component.RenderBar(model.TopTabs, model.Selection{Focused: true}, 0))
}

func TestRenderBarFull(t *testing.T) {
	out := component.RenderBar(model.TopTabs, model.Selection{Focused: true, Index: 1}, 80)
	plain := ansi.Strip(out)

	require.True(t, strings.HasPrefix(plain, " Torrents    States and trackers    Preferences    Help "))
	require.Contains(t, out, styles.BarFocused+" States and trackers "+styles.BarRestore)
	require.NotContains(t, out, styles.BarSelected)
}

func TestRenderBarRememberedStyle(t *testing.T) {
	out := component.RenderBar(model.MiddleTabs, model.Selection{Focused: false, Index: 2}, 80)
	require.Contains(t, out, styles.BarSelected+" Peers "+styles.BarRestore)
	require.NotContains(t, out, styles.BarFocused)
}

func TestRenderBarDegrades(t *testing.T) {
	focused := model.Selection{Focused: true, Index: 0}

	// Single padded tab.
	out := component.RenderBar(model.TopTabs, focused, 10)
	require.Equal(t, " Torrents ", ansi.Strip(out))
	require.Contains(t, out, styles.BarFocused)

	// Padding stripped.
	out = component.RenderBar(model.TopTabs, focused, 9)
	require.Equal(t, "Torrents ", ansi.Strip(out))
	out = component.RenderBar(model.TopTabs, focused, 8)
	require.Equal(t, "Torrents", ansi.Strip(out))

	// Hard truncated.
	out = component.RenderBar(model.TopTabs, model.Selection{Focused: false, Index: 1}, 5)
	require.Equal(t, "State", ansi.Strip(out))
	require.Contains(t, out, styles.BarSelected)

	out = component.RenderBar(model.TopTabs, focused, 1)
	require.Equal(t, "T", ansi.Strip(out))
}
