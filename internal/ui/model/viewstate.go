package model

const (
	// DefaultMiddleMinHeight is the smallest terminal height that still has room for the middle bar.
	DefaultMiddleMinHeight = 18
	// DefaultMiddleRowOffset is how many rows above the bottom of the screen the middle bar sits.
	DefaultMiddleRowOffset = 10
)

// Dimensions is the cached terminal size. Both values are at least 1 once set through Normalize.
type Dimensions struct {
	Height int
	Width  int
}

// Normalize bumps zero or negative sizes (reported by some ptys mid-resize) to 1.
func (d Dimensions) Normalize() Dimensions {
	return Dimensions{Height: max(d.Height, 1), Width: max(d.Width, 1)}
}

// Layout holds the height cutoffs that decide where, and whether, the middle bar is drawn.
//
// ----------- 1        top bar
// |  body   |
// |---------- h-offset middle bar (only on the Torrents tab, only when h >= MiddleMinHeight)
// |  body   |
// ----------- h        status bar
type Layout struct {
	MiddleMinHeight int
	MiddleRowOffset int
}

func DefaultLayout() Layout {
	return Layout{MiddleMinHeight: DefaultMiddleMinHeight, MiddleRowOffset: DefaultMiddleRowOffset}
}

// MiddleRow is the 1-based row of the middle bar.
func (l Layout) MiddleRow(dims Dimensions) int {
	return max(dims.Height-l.MiddleRowOffset, 1)
}

// MiddleFits reports whether the terminal is tall enough for the middle bar at all. The bar must
// land strictly between the top bar and the status bar, whatever the configured thresholds are.
func (l Layout) MiddleFits(dims Dimensions) bool {
	row := dims.Height - l.MiddleRowOffset

	return dims.Height >= l.MiddleMinHeight && row >= 2 && row <= dims.Height-1
}

// MiddleVisible reports whether the middle bar is drawn, which also requires the top bar to be on the
// tab that owns it.
func (l Layout) MiddleVisible(dims Dimensions, topIndex int) bool {
	return l.MiddleFits(dims) && topIndex == MiddleOwnerTab
}

// BodyRows returns the first and last row of the area between the top and bottom bars. The range is
// empty (first > last) on terminals shorter than three rows.
func (l Layout) BodyRows(dims Dimensions) (int, int) {
	return 2, dims.Height - 1
}
