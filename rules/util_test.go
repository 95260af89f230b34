package rules

import (
	"testing"

	"github.com/gridsnake/engine/grid"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// smallBoard is the 3x3 board used by most scenarios: G=20, W=60.
var smallBoard = grid.Board{CellSize: 20, Size: 60}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// snakeAt builds a live snake over points, tail first, heading d.
func snakeAt(board grid.Board, d grid.Direction, points ...grid.Point) *Snake {
	s := &Snake{board: board, pending: d}
	for _, p := range points {
		s.segments = append(s.segments, Segment{Point: p, From: d, To: d})
	}
	return s
}

type stubFood struct {
	pos         grid.Point
	placed      bool
	err         error
	regenerated []grid.Set
}

func (f *stubFood) Position() (grid.Point, bool) { return f.pos, f.placed }

func (f *stubFood) Regenerate(excluding grid.Set) error {
	f.regenerated = append(f.regenerated, excluding)
	return f.err
}

func noFood() *stubFood { return &stubFood{} }

func foodAt(p grid.Point) *stubFood { return &stubFood{pos: p, placed: true} }

func points(s *Snake) []grid.Point {
	out := []grid.Point{}
	for _, seg := range s.Segments() {
		out = append(out, seg.Point)
	}
	return out
}

func requireDistinct(t *testing.T, s *Snake) {
	t.Helper()
	seen := grid.NewSet()
	for _, seg := range s.Segments() {
		require.False(t, seen.Contains(seg.Point), "segment %v appears twice", seg.Point)
		seen.Add(seg.Point)
	}
}

func requireOnBoard(t *testing.T, board grid.Board, s *Snake) {
	t.Helper()
	for _, seg := range s.Segments() {
		require.True(t, board.Contains(seg.Point), "segment %v off board", seg.Point)
	}
}
