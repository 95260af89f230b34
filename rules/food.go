package rules

import (
	"github.com/gridsnake/engine/grid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when there is no free cell left to place food on.
var ErrBoardFull = errors.New("rules: no unoccupied cell left for food")

// maxSpawnAttempts bounds rejection sampling before falling back to scanning
// the free cells.
const maxSpawnAttempts = 32

// FoodSpawner owns the single piece of food on the board.
type FoodSpawner struct {
	board  grid.Board
	rng    *rand.Rand
	pos    grid.Point
	placed bool
}

// NewFoodSpawner returns a spawner with no food placed yet. Call Regenerate
// to place the first piece.
func NewFoodSpawner(board grid.Board, rng *rand.Rand) *FoodSpawner {
	return &FoodSpawner{board: board, rng: rng}
}

// Position returns the current food cell. ok is false when no food is on the
// board.
func (f *FoodSpawner) Position() (p grid.Point, ok bool) {
	return f.pos, f.placed
}

// Regenerate moves the food to a cell chosen uniformly among the cells not in
// excluding. It returns ErrBoardFull and removes the food when every cell is
// excluded.
func (f *FoodSpawner) Regenerate(excluding grid.Set) error {
	cells := f.board.Cells()

	if len(excluding) < cells {
		for i := 0; i < maxSpawnAttempts; i++ {
			p := f.board.CellAt(f.rng.Intn(cells))
			if !excluding.Contains(p) {
				f.pos, f.placed = p, true
				return nil
			}
		}
	}

	p, ok := f.unoccupiedPoint(excluding)
	if !ok {
		f.pos, f.placed = grid.Point{}, false
		return ErrBoardFull
	}
	f.pos, f.placed = p, true
	return nil
}

func (f *FoodSpawner) unoccupiedPoint(excluding grid.Set) (grid.Point, bool) {
	candidates := make([]grid.Point, 0, f.board.Cells())
	for i := 0; i < f.board.Cells(); i++ {
		p := f.board.CellAt(i)
		if !excluding.Contains(p) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return grid.Point{}, false
	}
	return candidates[f.rng.Intn(len(candidates))], true
}
