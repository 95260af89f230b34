package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridsnake/engine/grid"
	"github.com/gridsnake/engine/rules"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var testBoard = grid.Board{CellSize: 20, Size: 600}

func newTestGame() *rules.Game {
	return rules.NewGame(testBoard, rand.New(rand.NewSource(1)))
}

type harness struct {
	ticks    chan struct{}
	commands chan Command
	frames   chan *rules.Frame
	done     chan error
}

func startWorker(t *testing.T, w *Worker) *harness {
	h := &harness{
		ticks:    make(chan struct{}),
		commands: make(chan Command),
		frames:   make(chan *rules.Frame, 16),
		done:     make(chan error, 1),
	}
	w.Ticks = h.ticks
	w.Sinks = append(w.Sinks, SinkFunc(func(f *rules.Frame) error {
		h.frames <- f
		return nil
	}))
	go func() { h.done <- w.Run(context.Background(), h.commands) }()
	return h
}

func (h *harness) frame(t *testing.T) *rules.Frame {
	select {
	case f := <-h.frames:
		return f
	case <-time.After(time.Second):
		require.Fail(t, "no frame published")
	}
	return nil
}

func (h *harness) wait(t *testing.T) error {
	select {
	case err := <-h.done:
		return err
	case <-time.After(time.Second):
		require.Fail(t, "worker did not stop")
	}
	return nil
}

func TestWorker_PublishesInitialFrame(t *testing.T) {
	h := startWorker(t, &Worker{Game: newTestGame()})
	f := h.frame(t)
	require.Equal(t, int64(0), f.Turn)
	require.Equal(t, rules.GameStatusRunning, f.Status)

	close(h.commands)
	require.NoError(t, h.wait(t))
}

func TestWorker_TurnAppliesOnNextTick(t *testing.T) {
	h := startWorker(t, &Worker{Game: newTestGame()})
	h.frame(t)

	h.commands <- Turn(grid.Up)
	h.commands <- Turn(grid.Left)
	h.ticks <- struct{}{}

	f := h.frame(t)
	require.Equal(t, int64(1), f.Turn)
	require.Equal(t, grid.Point{X: 580, Y: 0}, f.Head().Point)

	h.commands <- Command{Kind: CommandQuit}
	require.NoError(t, h.wait(t))
}

func TestWorker_Restart(t *testing.T) {
	game := newTestGame()
	h := startWorker(t, &Worker{Game: game})
	first := h.frame(t)

	h.ticks <- struct{}{}
	require.Equal(t, int64(1), h.frame(t).Turn)

	h.commands <- Command{Kind: CommandRestart}
	f := h.frame(t)
	require.Equal(t, int64(0), f.Turn)
	require.NotEqual(t, first.ID, f.ID)
	require.Len(t, f.Snake, 1)

	close(h.commands)
	require.NoError(t, h.wait(t))
}

func TestWorker_StopWhenDone(t *testing.T) {
	game := rules.NewGame(grid.Board{CellSize: 20, Size: 60}, rand.New(rand.NewSource(1)))
	game.Status = rules.GameStatusDead
	h := startWorker(t, &Worker{Game: game, StopWhenDone: true})
	h.frame(t)

	h.ticks <- struct{}{}
	require.NoError(t, h.wait(t))
}

func TestWorker_SinkError(t *testing.T) {
	boom := errors.New("boom")
	w := &Worker{
		Game:  newTestGame(),
		Ticks: make(chan struct{}),
		Sinks: []Sink{SinkFunc(func(*rules.Frame) error { return boom })},
	}
	require.Equal(t, boom, w.Run(context.Background(), make(chan Command)))
}

func TestWorker_RunRateLimited(t *testing.T) {
	w := &Worker{
		Game:     newTestGame(),
		TickRate: 200,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := w.Run(ctx, make(chan Command))
	require.Equal(t, context.DeadlineExceeded, err)
	require.True(t, w.Game.Turn > 0, "no ticks in 100ms at 200/s")
	require.True(t, w.Game.Turn <= 25, "ticked %d times in 100ms at 200/s", w.Game.Turn)
}
