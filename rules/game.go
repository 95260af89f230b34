package rules

import (
	"github.com/gridsnake/engine/grid"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Game is a single-player session: one snake, one piece of food and the
// bookkeeping around them.
type Game struct {
	ID     string
	Board  grid.Board
	Turn   int64
	Status GameStatus
	Cause  string

	Snake *Snake
	Food  *FoodSpawner

	rng *rand.Rand
}

// Frame is an immutable snapshot of a game, safe to hand to renderers.
type Frame struct {
	ID     string      `json:"id"`
	Turn   int64       `json:"turn"`
	Status GameStatus  `json:"status"`
	Cause  string      `json:"cause,omitempty"`
	Board  grid.Board  `json:"board"`
	Snake  []Segment   `json:"snake"`
	Food   *grid.Point `json:"food,omitempty"`
}

// NewGame creates a running game on board. rng drives food placement and is
// kept across resets.
func NewGame(board grid.Board, rng *rand.Rand) *Game {
	g := &Game{Board: board, rng: rng}
	g.Reset()
	return g
}

// Reset puts the snake and food back to their initial state under a new game
// id.
func (g *Game) Reset() {
	g.ID = uuid.NewV4().String()
	g.Turn = 0
	g.Status = GameStatusRunning
	g.Cause = ""
	g.Snake = NewSnake(g.Board)
	g.Food = NewFoodSpawner(g.Board, g.rng)
	if err := g.Food.Regenerate(g.Snake.Occupied()); err == ErrBoardFull {
		// A one cell board is full before the first move.
		g.Status = GameStatusWon
	}

	log.WithFields(log.Fields{
		"GameID": g.ID,
		"Width":  g.Board.Size,
		"Cell":   g.Board.CellSize,
	}).Info("game reset")
}

// Steer buffers a direction change for the next tick.
func (g *Game) Steer(d grid.Direction) {
	g.Snake.Turn(d)
}

// Tick runs the game forward one step. Finished games do not change.
func (g *Game) Tick() Event {
	if g.Status.Done() {
		return EventNone
	}
	g.Turn++

	event := g.Snake.Advance(g.Food)
	fields := log.Fields{
		"GameID": g.ID,
		"Turn":   g.Turn,
		"Length": g.Snake.Len(),
	}
	switch event {
	case EventAte:
		food, _ := g.Food.Position()
		fields["Food"] = food
		log.WithFields(fields).Debug("snake ate")
	case EventDied:
		g.Status = GameStatusDead
		g.Cause = DeathCauseSnakeSelfCollision
		log.WithFields(fields).Info("snake died")
	case EventBoardFull:
		g.Status = GameStatusWon
		log.WithFields(fields).Info("board full")
	}
	return event
}

// Frame snapshots the current state.
func (g *Game) Frame() *Frame {
	f := &Frame{
		ID:     g.ID,
		Turn:   g.Turn,
		Status: g.Status,
		Cause:  g.Cause,
		Board:  g.Board,
		Snake:  g.Snake.Segments(),
	}
	if p, ok := g.Food.Position(); ok {
		f.Food = &p
	}
	return f
}

// Head returns the head segment of the frame's snake.
func (f *Frame) Head() *Segment {
	if len(f.Snake) == 0 {
		return nil
	}
	return &f.Snake[len(f.Snake)-1]
}
