package commands

import (
	"context"
	"io/ioutil"
	"os"
	"time"

	"github.com/gridsnake/engine/api"
	"github.com/gridsnake/engine/grid"
	"github.com/gridsnake/engine/rules"
	"github.com/gridsnake/engine/worker"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logFile      string
	spectateAddr string
)

func init() {
	playCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the game owns the terminal")
	playCmd.Flags().StringVarP(&spectateAddr, "listen", "l", "", "serve the spectator api on this address")
	playCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	playCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play snake in the terminal",
	RunE: func(*cobra.Command, []string) error {
		return playGame()
	},
}

func playGame() error {
	closeLog, err := redirectLog()
	if err != nil {
		return err
	}
	defer closeLog()

	prometheus()

	board, err := cfg.Board()
	if err != nil {
		return err
	}
	game := rules.NewGame(board, cfg.Rand())

	if err = termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to start terminal")
	}
	defer termbox.Close()

	sinks := []worker.Sink{worker.SinkFunc(render)}
	if spectateAddr != "" {
		hub := api.NewHub()
		srv := api.New(spectateAddr, hub)
		go func() {
			if err := srv.WaitForExit(); err != nil {
				log.WithError(err).WithField("listen", spectateAddr).Error("spectator api failed")
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.WithError(err).Warn("spectator api shutdown")
			}
		}()
		sinks = append(sinks, hub)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	commands := make(chan worker.Command)
	go forwardInput(ctx, setupEventQueue(), commands)

	w := &worker.Worker{
		Game:     game,
		TickRate: cfg.TickLimit(),
		Sinks:    sinks,
	}
	err = w.Run(ctx, commands)
	if err == context.Canceled {
		return nil
	}
	return err
}

// redirectLog keeps logrus off the terminal while termbox owns it.
func redirectLog() (func(), error) {
	if logFile == "" {
		log.SetOutput(ioutil.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open log file %s", logFile)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		if err := f.Close(); err != nil {
			log.WithError(err).Error("unable to close log file")
		}
	}, nil
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}

func forwardInput(ctx context.Context, events <-chan termbox.Event, commands chan<- worker.Command) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			cmd, ok := keyCommand(ev)
			if !ok {
				continue
			}
			select {
			case commands <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}
}

// keyCommand maps a terminal event to a player command. Arrow keys, WASD and
// hjkl steer; r restarts; esc, q and ctrl-c quit.
func keyCommand(ev termbox.Event) (worker.Command, bool) {
	if ev.Type != termbox.EventKey {
		return worker.Command{}, false
	}

	switch ev.Key {
	case termbox.KeyArrowUp:
		return worker.Turn(grid.Up), true
	case termbox.KeyArrowDown:
		return worker.Turn(grid.Down), true
	case termbox.KeyArrowLeft:
		return worker.Turn(grid.Left), true
	case termbox.KeyArrowRight:
		return worker.Turn(grid.Right), true
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return worker.Command{Kind: worker.CommandQuit}, true
	}

	switch ev.Ch {
	case 'w', 'k':
		return worker.Turn(grid.Up), true
	case 's', 'j':
		return worker.Turn(grid.Down), true
	case 'a', 'h':
		return worker.Turn(grid.Left), true
	case 'd', 'l':
		return worker.Turn(grid.Right), true
	case 'r':
		return worker.Command{Kind: worker.CommandRestart}, true
	case 'q':
		return worker.Command{Kind: worker.CommandQuit}, true
	}
	return worker.Command{}, false
}
