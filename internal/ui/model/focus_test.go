package model_test

import (
	"testing"

	"github.com/leighmacdonald/tirek/internal/ui/input"
	"github.com/leighmacdonald/tirek/internal/ui/model"
	"github.com/stretchr/testify/require"
)

func newFocus() *model.Focus {
	return model.NewFocus(len(model.TopTabs), len(model.MiddleTabs), len(model.StatusTitles))
}

func requireSingleFocus(t *testing.T, focus *model.Focus) {
	t.Helper()

	require.NoError(t, focus.Validate())

	nonNegative := 0
	for _, bar := range []model.Bar{model.BarTop, model.BarMiddle, model.BarBottom} {
		value := focus.Selection(bar).Value()
		if value >= 0 {
			nonNegative++
			require.Equal(t, focus.Current(), bar)
		}
		recovered := value
		if value < 0 {
			recovered = ^value
		}
		require.GreaterOrEqual(t, recovered, 0)
		require.Less(t, recovered, focus.TabCount(bar))
	}
	require.Equal(t, 1, nonNegative)
}

func TestSelectionValue(t *testing.T) {
	for idx := range 4 {
		focused := model.Selection{Focused: true, Index: idx}
		require.Equal(t, idx, focused.Value())
		require.Equal(t, focused, model.SelectionFromValue(focused.Value()))

		remembered := model.Selection{Focused: false, Index: idx}
		require.Equal(t, -idx-1, remembered.Value())
		require.Equal(t, remembered, model.SelectionFromValue(remembered.Value()))
	}
}

func TestFocusDefaults(t *testing.T) {
	focus := newFocus()
	require.Equal(t, model.BarTop, focus.Current())
	require.Equal(t, 0, focus.Selection(model.BarTop).Value())
	require.Equal(t, ^0, focus.Selection(model.BarMiddle).Value())
	require.Equal(t, ^0, focus.Selection(model.BarBottom).Value())
	requireSingleFocus(t, focus)
}

func TestMoveSelectionClamps(t *testing.T) {
	focus := newFocus()

	for want := 1; want <= 3; want++ {
		dirty := focus.MoveSelection(input.Right)
		require.Equal(t, []model.Bar{model.BarTop}, dirty)
		require.Equal(t, want, focus.TabIndex(model.BarTop))
	}

	dirty := focus.MoveSelection(input.Right)
	require.Equal(t, []model.Bar{model.BarTop}, dirty, "no-op still reports the bar")
	require.Equal(t, 3, focus.TabIndex(model.BarTop))
	require.Equal(t, model.BarTop, focus.Current())
	require.Equal(t, 0, focus.TabIndex(model.BarMiddle))
	require.Equal(t, 0, focus.TabIndex(model.BarBottom))

	for range 5 {
		focus.MoveSelection(input.Left)
	}
	require.Equal(t, 0, focus.TabIndex(model.BarTop))
	require.Nil(t, focus.MoveSelection(input.Up))
	requireSingleFocus(t, focus)
}

func TestMoveFocusCycle(t *testing.T) {
	focus := newFocus()

	require.Equal(t, []model.Bar{model.BarTop, model.BarMiddle}, focus.MoveFocus(input.Down, true))
	require.Equal(t, model.BarMiddle, focus.Current())
	requireSingleFocus(t, focus)

	focus.MoveFocus(input.Down, true)
	require.Equal(t, model.BarBottom, focus.Current())

	focus.MoveFocus(input.Down, true)
	require.Equal(t, model.BarTop, focus.Current())

	focus.MoveFocus(input.Up, true)
	require.Equal(t, model.BarBottom, focus.Current())
	requireSingleFocus(t, focus)
}

func TestMoveFocusSkipsHiddenMiddle(t *testing.T) {
	focus := newFocus()

	require.Equal(t, []model.Bar{model.BarTop, model.BarBottom}, focus.MoveFocus(input.Down, false))
	require.Equal(t, model.BarBottom, focus.Current())
	focus.MoveFocus(input.Down, false)
	require.Equal(t, model.BarTop, focus.Current())
	focus.MoveFocus(input.Up, false)
	require.Equal(t, model.BarBottom, focus.Current())
	requireSingleFocus(t, focus)
}

func TestMoveFocusIsReversible(t *testing.T) {
	for _, middle := range []bool{true, false} {
		for steps := 1; steps <= 5; steps++ {
			focus := newFocus()
			focus.MoveSelection(input.Right)
			focus.MoveFocus(input.Down, true)
			focus.MoveSelection(input.Right)
			focus.MoveSelection(input.Right)
			focus.MoveFocus(input.Up, true)

			start := focus.Current()
			before := []model.Selection{
				focus.Selection(model.BarTop),
				focus.Selection(model.BarMiddle),
				focus.Selection(model.BarBottom),
			}

			for range steps {
				focus.MoveFocus(input.Down, middle)
				requireSingleFocus(t, focus)
			}
			for range steps {
				focus.MoveFocus(input.Up, middle)
				requireSingleFocus(t, focus)
			}

			require.Equal(t, start, focus.Current())
			require.Equal(t, before, []model.Selection{
				focus.Selection(model.BarTop),
				focus.Selection(model.BarMiddle),
				focus.Selection(model.BarBottom),
			})
		}
	}
}

func TestFocusTopRemembersIndex(t *testing.T) {
	focus := newFocus()
	focus.MoveFocus(input.Down, true)
	focus.MoveSelection(input.Right)
	focus.MoveSelection(input.Right)

	require.Equal(t, []model.Bar{model.BarMiddle, model.BarTop}, focus.FocusTop())
	require.Equal(t, model.BarTop, focus.Current())
	require.Equal(t, model.Selection{Focused: false, Index: 2}, focus.Selection(model.BarMiddle))
	require.Nil(t, focus.FocusTop())
	requireSingleFocus(t, focus)
}

func TestClamp(t *testing.T) {
	require.Equal(t, 0, model.Clamp(-3, 0, 3))
	require.Equal(t, 3, model.Clamp(9, 0, 3))
	require.Equal(t, 2, model.Clamp(2, 3, 0))
	require.InDelta(t, 1.5, model.Clamp(1.5, 0.0, 2.0), 0.001)
}

func TestLayout(t *testing.T) {
	layout := model.DefaultLayout()
	tall := model.Dimensions{Height: 24, Width: 80}
	short := model.Dimensions{Height: 10, Width: 80}

	require.Equal(t, 14, layout.MiddleRow(tall))
	require.Equal(t, 1, layout.MiddleRow(short))
	require.True(t, layout.MiddleVisible(tall, model.TabTorrents))
	require.False(t, layout.MiddleVisible(tall, model.TabHelp))
	require.False(t, layout.MiddleVisible(short, model.TabTorrents))
	require.Equal(t, model.Dimensions{Height: 1, Width: 1}, model.Dimensions{}.Normalize())
}

func TestLayoutRejectsCollidingRows(t *testing.T) {
	// Would put the middle bar on the top bar's row.
	layout := model.Layout{MiddleMinHeight: 5, MiddleRowOffset: 10}
	require.False(t, layout.MiddleFits(model.Dimensions{Height: 8, Width: 80}))
	require.True(t, layout.MiddleFits(model.Dimensions{Height: 12, Width: 80}))

	// Would put it on the status bar's row.
	layout = model.Layout{MiddleMinHeight: 3, MiddleRowOffset: 0}
	require.False(t, layout.MiddleFits(model.Dimensions{Height: 20, Width: 80}))

	layout = model.Layout{MiddleMinHeight: 3, MiddleRowOffset: 1}
	require.True(t, layout.MiddleFits(model.Dimensions{Height: 3, Width: 80}))
	require.Equal(t, 2, layout.MiddleRow(model.Dimensions{Height: 3, Width: 80}))
}
