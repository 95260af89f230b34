package commands

import (
	"errors"
	"fmt"

	"github.com/gridsnake/engine/grid"
	"github.com/gridsnake/engine/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	foodColor    = termbox.ColorRed

	left = 2
	top  = 2
	// cellWidth is the number of terminal columns per board cell, so cells
	// come out roughly square.
	cellWidth = 2
)

const foodRune = '●'

type orientation struct {
	from, to grid.Direction
}

// bodyGlyphs picks the line drawing for a body segment from the direction the
// snake entered the cell and the direction it left it.
var bodyGlyphs = map[orientation]rune{
	{grid.Left, grid.Left}:   '─',
	{grid.Right, grid.Right}: '─',
	{grid.Up, grid.Up}:       '│',
	{grid.Down, grid.Down}:   '│',
	{grid.Right, grid.Up}:    '┘',
	{grid.Down, grid.Left}:   '┘',
	{grid.Right, grid.Down}:  '┐',
	{grid.Up, grid.Left}:     '┐',
	{grid.Left, grid.Up}:     '└',
	{grid.Down, grid.Right}:  '└',
	{grid.Left, grid.Down}:   '┌',
	{grid.Up, grid.Right}:    '┌',
}

var headGlyphs = map[grid.Direction]rune{
	grid.Up:    '▲',
	grid.Down:  '▼',
	grid.Left:  '◀',
	grid.Right: '▶',
}

func segmentGlyph(s rules.Segment) rune {
	if s.Head {
		if r, ok := headGlyphs[s.To]; ok {
			return r
		}
		return '■'
	}
	if r, ok := bodyGlyphs[orientation{s.From, s.To}]; ok {
		return r
	}
	return '■'
}

// cellX and cellY map a board point to its terminal position inside the
// border.
func cellX(b grid.Board, p grid.Point) int { return left + 1 + (p.X/b.CellSize)*cellWidth }
func cellY(b grid.Board, p grid.Point) int { return top + 1 + p.Y/b.CellSize }

func render(frame *rules.Frame) error {
	if frame == nil {
		return errors.New("received nil frame")
	}
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	width := frame.Board.Columns() * cellWidth
	height := frame.Board.Columns()

	renderTitle(frame)
	renderBoard(width, height)
	renderFood(frame)
	renderSnake(frame)
	renderStatus(frame, top+height+2)

	return termbox.Flush()
}

func renderSnake(frame *rules.Frame) {
	for _, s := range frame.Snake {
		x, y := cellX(frame.Board, s.Point), cellY(frame.Board, s.Point)
		termbox.SetCell(x, y, segmentGlyph(s), termbox.ColorBlack, snakeColor)
		termbox.SetCell(x+1, y, ' ', termbox.ColorBlack, snakeColor)
	}
}

func renderFood(frame *rules.Frame) {
	if frame.Food == nil {
		return
	}
	termbox.SetCell(cellX(frame.Board, *frame.Food), cellY(frame.Board, *frame.Food), foodRune, foodColor, bgColor)
}

func renderBoard(width, height int) {
	right := left + 1 + width
	bottom := top + 1 + height
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left, i, '│', defaultColor, bgColor)
		termbox.SetCell(right, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(right, top, '┐', defaultColor, bgColor)
	termbox.SetCell(right, bottom, '┘', defaultColor, bgColor)

	fill(left+1, top, width, 1, termbox.Cell{Ch: '─'})
	fill(left+1, bottom, width, 1, termbox.Cell{Ch: '─'})
}

func renderTitle(frame *rules.Frame) {
	tbprint(left, top-1, defaultColor, defaultColor,
		fmt.Sprintf("Snake! - Turn %d - Length %d", frame.Turn, len(frame.Snake)))
}

func renderStatus(frame *rules.Frame, y int) {
	tbprint(left, y, defaultColor, defaultColor, statusLine(frame))
}

func statusLine(frame *rules.Frame) string {
	switch frame.Status {
	case rules.GameStatusDead:
		return fmt.Sprintf("Game over (%s) - r to restart, esc to quit", frame.Cause)
	case rules.GameStatusWon:
		return "Board full, you win! - r to restart, esc to quit"
	}
	return "arrows/wasd to steer, r to restart, esc to quit"
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
