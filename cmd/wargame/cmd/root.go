package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"wargame/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "wargame",
	Short: "A two-player tactical wargame with a minimax computer player",
	Long: `Wargame pits an attacker against a defender on a small square board.
Each side fields an AI unit that must survive, supported by viruses,
techs, programs and firewalls. Either side can be played by a human at
the console, by the built-in minimax searcher, or by a remote peer
relaying moves through a broker.

Use "wargame [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig loads the environment configuration and applies the log level.
// Logs go to stderr so they never mix into the board rendering on stdout
func initConfig() {
	cfg = config.Load()
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}
