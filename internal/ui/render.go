package ui

import (
	"errors"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/leighmacdonald/tirek/internal/state"
	"github.com/leighmacdonald/tirek/internal/ui/component"
	"github.com/leighmacdonald/tirek/internal/ui/model"
	"github.com/leighmacdonald/tirek/internal/ui/styles"
)

var errRender = errors.New("failed to write to terminal")

// renderLoop paints a frame, then sleeps on the condition variable until something changes. The lock
// is held for the whole cycle except while waiting, so a frame never sees a half applied update.
func (u *UI) renderLoop() error {
	s := u.shared

	s.mu.Lock()
	defer s.mu.Unlock()

	for s.running {
		s.pending = false
		if _, err := io.WriteString(u.term, s.frame(u.feed.Snapshot())); err != nil {
			return errors.Join(err, errRender)
		}

		for !s.pending && s.running {
			s.cond.Wait()
		}
	}

	return nil
}

// frame builds the output for one render cycle and drains the dirty queue. Must be called with mu held.
func (s *shared) frame(snap state.Snapshot) string {
	var buf strings.Builder

	hints := s.dirty
	s.dirty = nil
	middleVisible := s.middleVisible()

	if s.full || len(hints) == 0 {
		s.full = false
		buf.WriteString(ansi.ResetStyle + ansi.CursorHomePosition + ansi.EraseEntireScreen)
		for _, bar := range []model.Bar{model.BarTop, model.BarMiddle, model.BarBottom} {
			s.paintBar(&buf, bar, snap, middleVisible)
		}
		s.fullRedraws++
	} else {
		slices.Sort(hints)
		for _, hint := range slices.Compact(hints) {
			if hint == regionBody {
				continue
			}
			s.paintBar(&buf, model.Bar(hint), snap, middleVisible)
		}
	}

	s.paintBody(&buf, snap, middleVisible)

	return buf.String()
}

// barRow returns the 1-based screen row of bar, or false when the bar is not drawn.
func (s *shared) barRow(bar model.Bar, middleVisible bool) (int, bool) {
	switch bar {
	case model.BarTop:
		return 1, true
	case model.BarMiddle:
		return s.layout.MiddleRow(s.dims), middleVisible
	case model.BarBottom:
		return s.dims.Height, s.dims.Height > 1
	default:
		return 0, false
	}
}

// barLine renders a single bar. A hidden middle bar renders as the empty string.
func (s *shared) barLine(bar model.Bar, snap state.Snapshot, middleVisible bool) string {
	sel := s.focus.Selection(bar)
	switch bar {
	case model.BarTop:
		return component.RenderBar(model.TopTabs, sel, s.dims.Width)
	case model.BarMiddle:
		if !middleVisible {
			return ""
		}

		return component.RenderBar(model.MiddleTabs, sel, s.dims.Width)
	case model.BarBottom:
		return component.RenderStatusBar(snap, sel, s.dims.Width)
	default:
		return ""
	}
}

func (s *shared) paintBar(buf *strings.Builder, bar model.Bar, snap state.Snapshot, middleVisible bool) {
	row, drawn := s.barRow(bar, middleVisible)
	if !drawn {
		return
	}

	buf.WriteString(ansi.CursorPosition(1, row))
	buf.WriteString(ansi.EraseEntireLine)
	buf.WriteString(s.barLine(bar, snap, middleVisible))
	buf.WriteString(styles.Reset)
}

// paintBody fills the rows between the top and bottom bars with the page that belongs to the top tab.
func (s *shared) paintBody(buf *strings.Builder, snap state.Snapshot, middleVisible bool) {
	first, last := s.layout.BodyRows(s.dims)
	rows := last - first + 1
	if rows <= 0 {
		return
	}

	var lines []string
	switch s.focus.TabIndex(model.BarTop) {
	case model.TabHelp:
		s.helpOffset = model.Clamp(s.helpOffset, 0, s.maxHelpOffset())
		lines = component.RenderPane(s.helpLines, s.helpOffset, rows, s.dims.Width)
	case model.TabPreferences:
		lines = component.RenderPane(s.prefLines, 0, rows, s.dims.Width)
	}

	for idx := range rows {
		buf.WriteString(ansi.CursorPosition(1, first+idx))
		buf.WriteString(ansi.EraseEntireLine)
		if idx < len(lines) {
			buf.WriteString(lines[idx])
		}
	}

	if middleVisible {
		s.paintBar(buf, model.BarMiddle, snap, middleVisible)
	}
}
