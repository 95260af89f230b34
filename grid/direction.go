package grid

// Direction is one of the four cardinal moves. The string values double as
// the wire form.
type Direction string

// Valid directions. Up decreases Y, matching screen coordinates.
const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions lists every valid direction.
var Directions = []Direction{Up, Down, Left, Right}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// Opposite returns the reversed direction on the same axis. An invalid
// direction is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// IsOpposite reports whether d and other share an axis with reversed sign.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Valid() && d.Opposite() == other
}

// Vertical reports whether d moves along the Y axis.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// Unit returns the one-cell offset for d, in cells rather than board units.
func (d Direction) Unit() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}
