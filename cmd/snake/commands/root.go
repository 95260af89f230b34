package commands

import (
	"fmt"
	"os"

	"github.com/gridsnake/engine/config"
	"github.com/gridsnake/engine/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake is a single player snake game for the terminal",
	Version: version.Version,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return cfg.Validate()
	},
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	cfg      = config.Default()
	logLevel = "info"
)

// Execute runs the root command
func Execute() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&cfg.CellSize, "cell-size", cfg.CellSize, "side of one grid cell, in board units")
	flags.IntVar(&cfg.BoardSize, "board-size", cfg.BoardSize, "side of the square board, a multiple of the cell size")
	flags.Float64Var(&cfg.TickRate, "tick-rate", cfg.TickRate, "snake steps per second")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "food placement seed, 0 seeds from the clock")
	flags.StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")

	rootCmd.Flags().AddFlagSet(playCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
