package model

// Direction is a unit step (DRow, DCol) a word advances along.
// The zero direction is never valid.
type Direction struct {
	DRow int
	DCol int
}

// The eight compass directions, axis-aligned first
var (
	Right     = Direction{0, 1}
	Left      = Direction{0, -1}
	Down      = Direction{1, 0}
	Up        = Direction{-1, 0}
	DownRight = Direction{1, 1}
	DownLeft  = Direction{1, -1}
	UpRight   = Direction{-1, 1}
	UpLeft    = Direction{-1, -1}
)

// AllDirections includes diagonals
var AllDirections = []Direction{Right, Left, Down, Up, DownRight, DownLeft, UpRight, UpLeft}

// AxisDirections is the diagonal-free subset
var AxisDirections = []Direction{Right, Left, Down, Up}

// Directions returns the direction set for the diagonal flag
func Directions(allowDiagonals bool) []Direction {
	if allowDiagonals {
		return AllDirections
	}
	return AxisDirections
}

// IsAxisAligned returns true for purely horizontal or vertical directions
func (d Direction) IsAxisAligned() bool {
	return d.DRow == 0 || d.DCol == 0
}

// Name returns a human-readable direction name
func (d Direction) Name() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	case DownRight:
		return "down-right"
	case DownLeft:
		return "down-left"
	case UpRight:
		return "up-right"
	case UpLeft:
		return "up-left"
	}
	return "unknown"
}
