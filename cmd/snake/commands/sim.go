package commands

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/gridsnake/engine/grid"
	"github.com/gridsnake/engine/rules"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

var (
	simTicks int
	simGames int
	simDump  bool
)

func init() {
	simCmd.Flags().IntVarP(&simTicks, "ticks", "t", 1000, "maximum ticks per game")
	simCmd.Flags().IntVarP(&simGames, "num-games", "n", 1, "number of games to simulate")
	simCmd.Flags().BoolVar(&simDump, "dump", false, "dump the final frame of every game")
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "runs headless games driven by a random autopilot",
	RunE: func(*cobra.Command, []string) error {
		board, err := cfg.Board()
		if err != nil {
			return err
		}
		rng := cfg.Rand()
		game := rules.NewGame(board, rng)
		for i := 0; i < simGames; i++ {
			if i > 0 {
				game.Reset()
			}
			frame := simulate(game, rng, simTicks)
			log.WithFields(log.Fields{
				"GameID": frame.ID,
				"Turn":   frame.Turn,
				"Status": frame.Status,
				"Length": len(frame.Snake),
			}).Info("game finished")
			if simDump {
				spew.Dump(frame)
			}
		}
		return nil
	},
}

// simulate runs game for at most ticks steps and returns the last frame.
func simulate(game *rules.Game, rng *rand.Rand, ticks int) *rules.Frame {
	for i := 0; i < ticks && !game.Status.Done(); i++ {
		if d, ok := autopilot(game, rng); ok {
			game.Steer(d)
		}
		game.Tick()
	}
	return game.Frame()
}

// autopilot picks a random direction whose next cell is free, preferring the
// food when it is one step away. ok is false when every move is fatal.
func autopilot(game *rules.Game, rng *rand.Rand) (grid.Direction, bool) {
	head := game.Snake.Head().Point
	occupied := game.Snake.Occupied()
	food, hasFood := game.Food.Position()

	safe := []grid.Direction{}
	for _, d := range grid.Directions {
		if d.IsOpposite(game.Snake.Direction()) {
			continue
		}
		next := game.Board.Step(head, d)
		if occupied.Contains(next) {
			continue
		}
		if hasFood && next.Equals(food) {
			return d, true
		}
		safe = append(safe, d)
	}
	if len(safe) == 0 {
		return "", false
	}
	return safe[rng.Intn(len(safe))], true
}
