package model

import (
	"errors"
	"fmt"

	"github.com/leighmacdonald/tirek/internal/ui/input"
)

var errFocusInvariant = errors.New("focus invariant violated")

// Bar names one of the three selectable bars.
type Bar int

const (
	BarTop Bar = iota
	BarMiddle
	BarBottom
)

const barCount = 3

func (b Bar) String() string {
	switch b {
	case BarTop:
		return "top"
	case BarMiddle:
		return "middle"
	case BarBottom:
		return "bottom"
	default:
		return fmt.Sprintf("bar(%d)", int(b))
	}
}

// Selection is the state of a single bar. A focused bar owns keyboard input and Index is its active
// tab. An unfocused bar keeps Index as the tab it will return to when focus comes back.
type Selection struct {
	Focused bool
	Index   int
}

// SelectionFromValue decodes the packed form produced by Value.
func SelectionFromValue(value int) Selection {
	if value >= 0 {
		return Selection{Focused: true, Index: value}
	}

	return Selection{Focused: false, Index: ^value}
}

// Value packs the selection into a single int: the index itself when focused, its bitwise
// complement when not.
func (s Selection) Value() int {
	if s.Focused {
		return s.Index
	}

	return ^s.Index
}

func (s Selection) toggle() Selection {
	s.Focused = !s.Focused

	return s
}

// Focus tracks which bar owns input and the active or remembered tab of every bar. Exactly one
// bar is focused at all times and it is always the Active one.
//
// Focus is not safe for concurrent use; the ui guards it with its own lock.
type Focus struct {
	active Bar
	bars   [barCount]Selection
	counts [barCount]int
}

// NewFocus starts with the top bar focused on its first tab and the other bars remembering their
// first tab.
func NewFocus(topTabs int, middleTabs int, bottomTabs int) *Focus {
	return &Focus{
		active: BarTop,
		bars: [barCount]Selection{
			{Focused: true, Index: 0},
			{Focused: false, Index: 0},
			{Focused: false, Index: 0},
		},
		counts: [barCount]int{max(topTabs, 1), max(middleTabs, 1), max(bottomTabs, 1)},
	}
}

// Current returns the bar that has input focus.
func (f *Focus) Current() Bar {
	return f.active
}

// TabIndex returns the active or remembered tab of bar.
func (f *Focus) TabIndex(bar Bar) int {
	return f.bars[bar].Index
}

func (f *Focus) Selection(bar Bar) Selection {
	return f.bars[bar]
}

// TabCount returns how many tabs bar has.
func (f *Focus) TabCount(bar Bar) int {
	return f.counts[bar]
}

// MoveSelection moves the focused bar's tab left or right, stopping at either end. The focused bar
// is always returned as dirty, even when it was already at the bound.
func (f *Focus) MoveSelection(dir input.Direction) []Bar {
	if dir != input.Left && dir != input.Right {
		return nil
	}

	sel := &f.bars[f.active]
	sel.Index = Clamp(sel.Index+dir.Step(), 0, f.counts[f.active]-1)

	return []Bar{f.active}
}

// MoveFocus hands focus to the next bar up or down, wrapping around from top to bottom. The middle
// bar is skipped when it is not visible. Both bars involved are returned as dirty.
func (f *Focus) MoveFocus(dir input.Direction, middleVisible bool) []Bar {
	if dir != input.Up && dir != input.Down {
		return nil
	}

	next := f.active
	for {
		next = Bar((int(next) + dir.Step() + barCount) % barCount)
		if next != BarMiddle || middleVisible {
			break
		}
	}

	return f.transfer(next)
}

// FocusTop forces focus back to the top bar. Used when a resize hides the bar that had focus.
func (f *Focus) FocusTop() []Bar {
	return f.transfer(BarTop)
}

func (f *Focus) transfer(next Bar) []Bar {
	if next == f.active {
		return nil
	}

	prev := f.active
	f.bars[prev] = f.bars[prev].toggle()
	f.bars[next] = f.bars[next].toggle()
	f.active = next

	return []Bar{prev, next}
}

// Validate checks that exactly one bar is focused, that it is the active bar, and that every
// index is in range.
func (f *Focus) Validate() error {
	focused := 0
	for bar, sel := range f.bars {
		if sel.Index < 0 || sel.Index >= f.counts[bar] {
			return fmt.Errorf("%w: %s index %d out of range", errFocusInvariant, Bar(bar), sel.Index)
		}

		if sel.Focused {
			focused++
			if Bar(bar) != f.active {
				return fmt.Errorf("%w: %s focused but %s active", errFocusInvariant, Bar(bar), f.active)
			}
		}
	}

	if focused != 1 {
		return fmt.Errorf("%w: %d bars focused", errFocusInvariant, focused)
	}

	return nil
}
