// Package grid holds the board geometry the game is played on: points,
// directions and a square board of fixed cell size with wrap-around edges.
package grid

import "fmt"

// Point is a board coordinate. Both components are expressed in board units,
// so on a valid board they are multiples of the cell size.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Equals checks if 2 points are the same x,y coordinate
func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Set is a set of points.
type Set map[Point]struct{}

// NewSet builds a set holding the given points.
func NewSet(points ...Point) Set {
	s := make(Set, len(points))
	for _, p := range points {
		s.Add(p)
	}
	return s
}

// Add inserts p.
func (s Set) Add(p Point) { s[p] = struct{}{} }

// Contains reports whether p is in the set.
func (s Set) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}
