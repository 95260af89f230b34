package grid

import "github.com/pkg/errors"

// ErrInvalidBoard is returned when the board geometry cannot be laid out in
// whole cells.
var ErrInvalidBoard = errors.New("grid: invalid board")

// Board is a square board of side Size split into cells of side CellSize.
// Size is always a multiple of CellSize.
type Board struct {
	CellSize int `json:"cellSize"`
	Size     int `json:"size"`
}

// NewBoard validates the geometry and returns the board.
func NewBoard(cellSize, size int) (Board, error) {
	if cellSize <= 0 {
		return Board{}, errors.Wrapf(ErrInvalidBoard, "cell size %d must be positive", cellSize)
	}
	if size < cellSize {
		return Board{}, errors.Wrapf(ErrInvalidBoard, "board size %d smaller than cell size %d", size, cellSize)
	}
	if size%cellSize != 0 {
		return Board{}, errors.Wrapf(ErrInvalidBoard, "board size %d is not a multiple of cell size %d", size, cellSize)
	}
	return Board{CellSize: cellSize, Size: size}, nil
}

// Columns is the number of cells along one side.
func (b Board) Columns() int {
	return b.Size / b.CellSize
}

// Cells is the total number of cells on the board.
func (b Board) Cells() int {
	c := b.Columns()
	return c * c
}

// CellAt maps a cell index in [0, Cells()) to its point, row-major.
func (b Board) CellAt(i int) Point {
	c := b.Columns()
	return Point{X: (i % c) * b.CellSize, Y: (i / c) * b.CellSize}
}

// Index is the inverse of CellAt.
func (b Board) Index(p Point) int {
	return (p.Y/b.CellSize)*b.Columns() + p.X/b.CellSize
}

// Contains reports whether p lies on the board and on a cell boundary.
func (b Board) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Size && p.Y >= 0 && p.Y < b.Size &&
		p.X%b.CellSize == 0 && p.Y%b.CellSize == 0
}

// Wrap folds p back onto the board, re-entering at the opposite edge.
func (b Board) Wrap(p Point) Point {
	return Point{X: wrap(p.X, b.Size), Y: wrap(p.Y, b.Size)}
}

// Step moves p one cell in direction d, wrapping at the edges.
func (b Board) Step(p Point, d Direction) Point {
	dx, dy := d.Unit()
	return b.Wrap(Point{X: p.X + dx*b.CellSize, Y: p.Y + dy*b.CellSize})
}

func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}
