package ui

import (
	"log/slog"
	"sync"

	"github.com/leighmacdonald/tirek/internal/ui/component"
	"github.com/leighmacdonald/tirek/internal/ui/input"
	"github.com/leighmacdonald/tirek/internal/ui/model"
)

// region is a redraw hint. The three bars map onto the first three values.
type region int

const (
	regionTop region = iota
	regionMiddle
	regionBottom
	regionBody
)

func barRegions(bars []model.Bar) []region {
	out := make([]region, len(bars))
	for idx, bar := range bars {
		out[idx] = region(bar)
	}

	return out
}

// shared is everything the input loop, the resize handler and the render loop touch. All fields are
// guarded by mu and every mutation ends with a signal on cond.
type shared struct {
	mu   sync.Mutex
	cond *sync.Cond

	dims   model.Dimensions
	layout model.Layout
	focus  *model.Focus

	// dirty is drained by the render loop. Empty means the next paint is a full repaint.
	dirty []region
	// full forces the next paint to clear the screen even when hints were queued after it was set.
	full    bool
	pending bool
	running bool

	helpOffset int
	helpStep   int
	helpLines  []string
	prefLines  []string

	fullRedraws int
}

func newShared(dims model.Dimensions, layout model.Layout) *shared {
	state := &shared{
		dims:     dims.Normalize(),
		layout:   layout,
		focus:    model.NewFocus(len(model.TopTabs), len(model.MiddleTabs), len(model.StatusTitles)),
		pending:  true,
		running:  true,
		helpStep: 1,
	}
	state.cond = sync.NewCond(&state.mu)

	return state
}

// update runs fn under the lock, queues the regions it reports and wakes the render loop.
func (s *shared) update(fn func() []region) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = append(s.dirty, fn()...)
	if err := s.focus.Validate(); err != nil {
		slog.Error("Inconsistent focus state", slog.String("error", err.Error()))
	}

	s.notify()
}

// notify must be called with mu held.
func (s *shared) notify() {
	s.pending = true
	s.cond.Signal()
}

func (s *shared) middleVisible() bool {
	return s.layout.MiddleVisible(s.dims, s.focus.TabIndex(model.BarTop))
}

func (s *shared) bodyRowCount() int {
	first, last := s.layout.BodyRows(s.dims)

	return max(last-first+1, 0)
}

func (s *shared) maxHelpOffset() int {
	return component.MaxScroll(len(s.helpLines), s.bodyRowCount())
}

func (s *shared) moveSelection(dir input.Direction) {
	s.update(func() []region {
		return barRegions(s.focus.MoveSelection(dir))
	})
}

func (s *shared) moveFocus(dir input.Direction) {
	s.update(func() []region {
		return barRegions(s.focus.MoveFocus(dir, s.middleVisible()))
	})
}

// scrollHelp moves the help pane by one step. It does nothing unless the top bar has focus on the
// Help tab.
func (s *shared) scrollHelp(dir input.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.focus.Current() != model.BarTop || s.focus.TabIndex(model.BarTop) != model.TabHelp {
		return
	}

	s.helpOffset = model.Clamp(s.helpOffset+dir.Step()*s.helpStep, 0, s.maxHelpOffset())
	s.dirty = append(s.dirty, regionBody)
	s.notify()
}

func (s *shared) resize(dims model.Dimensions) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dims = dims.Normalize()
	slog.Debug("Terminal resized", slog.Int("width", s.dims.Width), slog.Int("height", s.dims.Height))
	s.normalizeFocus()
	s.full = true
	s.notify()
}

func (s *shared) setLayout(layout model.Layout, helpStep int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.layout = layout
	s.helpStep = max(helpStep, 1)
	s.normalizeFocus()
	s.full = true
	s.notify()
}

func (s *shared) setHelpLines(lines []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.helpLines = lines
	s.helpOffset = model.Clamp(s.helpOffset, 0, s.maxHelpOffset())
	s.dirty = append(s.dirty, regionBody)
	s.notify()
}

// normalizeFocus moves focus back to the top bar when the middle bar it was on is no longer drawn.
func (s *shared) normalizeFocus() {
	if s.focus.Current() != model.BarMiddle || s.middleVisible() {
		return
	}

	s.focus.FocusTop()
	slog.Info("Middle bar hidden, focus moved to top bar", slog.Int("height", s.dims.Height))
}

func (s *shared) refreshStatus() {
	s.update(func() []region {
		return []region{regionBottom}
	})
}

// redraw makes the next paint clear the whole screen.
func (s *shared) redraw() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.full = true
	s.notify()
}

func (s *shared) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.cond.Broadcast()
}

func (s *shared) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}
