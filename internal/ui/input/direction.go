package input

// Direction is an arrow direction, used both for moving within a bar and for moving between bars.
type Direction int

const (
	Up Direction = iota //nolint:varnamelen
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Step is -1 for Up/Left and +1 for Down/Right.
func (d Direction) Step() int {
	if d == Up || d == Left {
		return -1
	}

	return 1
}
