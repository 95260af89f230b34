package commands

import (
	"testing"

	"github.com/gridsnake/engine/grid"
	"github.com/gridsnake/engine/rules"
	"github.com/gridsnake/engine/worker"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		Event    termbox.Event
		Expected worker.Command
		OK       bool
	}{
		{Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp}, Expected: worker.Turn(grid.Up), OK: true},
		{Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, Expected: worker.Turn(grid.Left), OK: true},
		{Event: termbox.Event{Type: termbox.EventKey, Ch: 's'}, Expected: worker.Turn(grid.Down), OK: true},
		{Event: termbox.Event{Type: termbox.EventKey, Ch: 'l'}, Expected: worker.Turn(grid.Right), OK: true},
		{Event: termbox.Event{Type: termbox.EventKey, Ch: 'r'}, Expected: worker.Command{Kind: worker.CommandRestart}, OK: true},
		{Event: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, Expected: worker.Command{Kind: worker.CommandQuit}, OK: true},
		{Event: termbox.Event{Type: termbox.EventKey, Ch: 'x'}},
		{Event: termbox.Event{Type: termbox.EventResize}},
	}

	for _, test := range tests {
		cmd, ok := keyCommand(test.Event)
		require.Equal(t, test.OK, ok, "%+v", test.Event)
		require.Equal(t, test.Expected, cmd, "%+v", test.Event)
	}
}

func TestSegmentGlyph(t *testing.T) {
	tests := []struct {
		Segment  rules.Segment
		Expected rune
	}{
		{Segment: rules.Segment{From: grid.Right, To: grid.Right}, Expected: '─'},
		{Segment: rules.Segment{From: grid.Down, To: grid.Down}, Expected: '│'},
		{Segment: rules.Segment{From: grid.Right, To: grid.Down}, Expected: '┐'},
		{Segment: rules.Segment{From: grid.Up, To: grid.Right}, Expected: '┌'},
		{Segment: rules.Segment{From: grid.Left, To: grid.Left, Head: true}, Expected: '◀'},
		{Segment: rules.Segment{}, Expected: '■'},
	}

	for _, test := range tests {
		require.Equal(t, string(test.Expected), string(segmentGlyph(test.Segment)), "%+v", test.Segment)
	}
}

func TestBodyGlyphsCoverEveryTurn(t *testing.T) {
	for _, from := range grid.Directions {
		for _, to := range grid.Directions {
			_, ok := bodyGlyphs[orientation{from, to}]
			require.Equal(t, !from.IsOpposite(to), ok, "%s -> %s", from, to)
		}
	}
}

func TestStatusLine(t *testing.T) {
	require.Contains(t, statusLine(&rules.Frame{Status: rules.GameStatusDead, Cause: rules.DeathCauseSnakeSelfCollision}), "snake-self-collision")
	require.Contains(t, statusLine(&rules.Frame{Status: rules.GameStatusWon}), "win")
	require.Contains(t, statusLine(&rules.Frame{Status: rules.GameStatusRunning}), "steer")
}

func TestSimulate(t *testing.T) {
	board := grid.Board{CellSize: 20, Size: 100}
	rng := rand.New(rand.NewSource(3))
	game := rules.NewGame(board, rng)

	frame := simulate(game, rng, 200)
	require.True(t, frame.Turn > 0)
	require.True(t, frame.Turn <= 200)
	for _, s := range frame.Snake {
		require.True(t, board.Contains(s.Point))
	}
	if frame.Status == rules.GameStatusRunning {
		require.Equal(t, int64(200), frame.Turn)
	}
}

func TestAutopilotTakesAdjacentFood(t *testing.T) {
	board := grid.Board{CellSize: 20, Size: 100}
	rng := rand.New(rand.NewSource(3))
	game := rules.NewGame(board, rng)

	for i := 0; i < 100; i++ {
		food, ok := game.Food.Position()
		require.True(t, ok)
		if food.Equals(grid.Point{X: 0, Y: 20}) {
			d, ok := autopilot(game, rng)
			require.True(t, ok)
			require.Equal(t, grid.Down, d)
			return
		}
		require.NoError(t, game.Food.Regenerate(game.Snake.Occupied()))
	}
	t.Skip("food never landed below the head")
}
