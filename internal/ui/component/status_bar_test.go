package component_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/leighmacdonald/tirek/internal/state"
	"github.com/leighmacdonald/tirek/internal/ui/component"
	"github.com/leighmacdonald/tirek/internal/ui/model"
	"github.com/leighmacdonald/tirek/internal/ui/styles"
	"github.com/stretchr/testify/require"
)

func TestStatusFields(t *testing.T) {
	fields := component.StatusFields(state.Placeholder())
	require.Equal(t, []string{
		"100 (200)",
		"100.0 MB/s↓ 100.0 MB/s↑",
		"12.00↓ 12.00↑ KB/s",
		"150",
	}, fields)

	fields = component.StatusFields(state.Snapshot{Connections: 1200, ConnectionLimit: 5000, DHTNodes: 12345})
	require.Equal(t, "1,200 (5,000)", fields[0])
	require.Equal(t, "0.0 B/s↓ 0.0 B/s↑", fields[1])
	require.Equal(t, "12,345", fields[3])
}

func TestRenderStatusBarWidth(t *testing.T) {
	snap := state.Placeholder()
	for idx := range model.StatusTitles {
		for _, focused := range []bool{true, false} {
			sel := model.Selection{Focused: focused, Index: idx}
			for width := 1; width <= 160; width++ {
				out := component.RenderStatusBar(snap, sel, width)
				require.Equal(t, width, ansi.StringWidth(out), "width %d sel %+v", width, sel)
			}
		}
	}
}

func TestRenderStatusBarLabels(t *testing.T) {
	snap := state.Placeholder()
	sel := model.Selection{Focused: true, Index: 0}

	// Everything fits.
	plain := ansi.Strip(component.RenderStatusBar(snap, sel, 160))
	for _, title := range model.StatusTitles {
		require.Contains(t, plain, title+": ")
	}

	// Only the selected field's label fits.
	plain = ansi.Strip(component.RenderStatusBar(snap, sel, 80))
	require.Contains(t, plain, "Connections: 100 (200)")
	require.NotContains(t, plain, "DHT nodes: ")
	require.Contains(t, plain, " 150 ")

	// No labels.
	plain = ansi.Strip(component.RenderStatusBar(snap, sel, 70))
	require.NotContains(t, plain, ":")
	require.Contains(t, plain, "100 (200)")
}

func TestRenderStatusBarCollapses(t *testing.T) {
	snap := state.Placeholder()

	out := component.RenderStatusBar(snap, model.Selection{Focused: false, Index: 1}, 45)
	require.Equal(t, " Transfer speed: 100.0 MB/s↓ 100.0 MB/s↑", strings.TrimRight(ansi.Strip(out), " "))
	require.Contains(t, out, styles.StatusMarked)

	out = component.RenderStatusBar(snap, model.Selection{Focused: true, Index: 1}, 12)
	require.Equal(t, " 100.0 MB/s ", ansi.Strip(out))
	require.Contains(t, out, styles.StatusActive)

	out = component.RenderStatusBar(snap, model.Selection{Focused: true, Index: 1}, 40)
	require.Equal(t, " 100.0 MB/s↓ 100.0 MB/s↑", strings.TrimRight(ansi.Strip(out), " "))
}
