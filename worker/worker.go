// Package worker runs a game session in real time. It owns the game on a
// single goroutine, multiplexing the tick source with player commands so a
// direction change and a tick never interleave, and publishes a frame to
// every sink after each change.
package worker

import (
	"context"

	"github.com/gridsnake/engine/grid"
	"github.com/gridsnake/engine/rules"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// CommandKind identifies what a player command does.
type CommandKind int

// Player commands.
const (
	CommandTurn CommandKind = iota
	CommandRestart
	CommandQuit
)

// Command is one discrete input event.
type Command struct {
	Kind      CommandKind
	Direction grid.Direction
}

// Turn is shorthand for a CommandTurn towards d.
func Turn(d grid.Direction) Command {
	return Command{Kind: CommandTurn, Direction: d}
}

// Sink receives frames. Publish is called from the worker goroutine and must
// not block for long; an error stops the worker.
type Sink interface {
	Publish(frame *rules.Frame) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(frame *rules.Frame) error

// Publish calls f.
func (f SinkFunc) Publish(frame *rules.Frame) error { return f(frame) }

// Worker drives a game at a fixed tick rate.
type Worker struct {
	Game     *rules.Game
	TickRate rate.Limit
	Sinks    []Sink

	// Ticks, when set, replaces the rate limited tick source.
	Ticks <-chan struct{}

	// StopWhenDone ends Run once the game reaches a terminal status instead
	// of waiting for a restart.
	StopWhenDone bool
}

// Run ticks the game until ctx is done, a quit command arrives, or the
// commands channel is closed. It returns ctx.Err() on cancellation and nil
// otherwise.
func (w *Worker) Run(ctx context.Context, commands <-chan Command) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticks := w.Ticks
	if ticks == nil {
		ticks = w.tickSource(ctx)
	}

	if err := w.publish(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case cmd, ok := <-commands:
			if !ok {
				return nil
			}
			switch cmd.Kind {
			case CommandTurn:
				w.Game.Steer(cmd.Direction)
			case CommandRestart:
				log.WithField("game", w.Game.ID).Info("restart requested")
				w.Game.Reset()
				restarts.Inc()
				if err := w.publish(); err != nil {
					return err
				}
			case CommandQuit:
				log.WithField("game", w.Game.ID).Info("quit requested")
				return nil
			}

		case <-ticks:
			if w.Game.Status.Done() {
				if w.StopWhenDone {
					return nil
				}
				continue
			}
			w.tick()
			if err := w.publish(); err != nil {
				return err
			}
		}
	}
}

func (w *Worker) tick() {
	defer instrument()()
	event := w.Game.Tick()
	events.WithLabelValues(event.String()).Inc()
	snakeLength.Set(float64(w.Game.Snake.Len()))
}

func (w *Worker) publish() error {
	if len(w.Sinks) == 0 {
		return nil
	}
	frame := w.Game.Frame()
	for _, s := range w.Sinks {
		if err := s.Publish(frame); err != nil {
			log.WithError(err).
				WithField("game", frame.ID).
				Error("frame sink failed")
			return err
		}
	}
	return nil
}

// tickSource emits one value per tick until ctx is done.
func (w *Worker) tickSource(ctx context.Context) <-chan struct{} {
	ticks := make(chan struct{})
	limiter := rate.NewLimiter(w.TickRate, 1)
	go func() {
		for {
			if err := limiter.Wait(ctx); err != nil {
				return
			}
			select {
			case ticks <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ticks
}
