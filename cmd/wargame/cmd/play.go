package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"wargame/broker"
	"wargame/config"
	"wargame/engine"
	"wargame/game"
	"wargame/searcher"
	"wargame/trace"
)

var (
	playGameType  string
	playDim       int
	playMaxDepth  int
	playMinDepth  int
	playMaxTime   time.Duration
	playMaxTurns  int
	playAlphaBeta bool
	playRandomize bool
	playHeuristic string
	playBroker    string
	playSeed      uint64
	playTrace     bool
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Play a single match from the opening deployment to a winner.

The attacker moves first and wins by destroying the defender's AI unit.
The defender wins by destroying the attacker's AI or by holding out
until the turn cap. Who controls each side is picked with --game-type:

  manual    both sides take moves from the console
  attacker  human attacker against the computer defender
  defender  computer attacker against a human defender
  auto      the computer plays itself

With --broker set (or WARGAME_BROKER in the environment), the human
side is played by a remote peer instead: its moves are fetched from the
broker and the computer's replies are posted back, so two processes can
play one match across a network.

Examples:
  wargame play                                    # two humans at one console
  wargame play --game-type attacker               # play the attacker yourself
  wargame play --game-type auto --heuristic e2    # watch the computer play
  wargame play --game-type defender --broker http://localhost:8000/`,
	Run: playHandler,
}

func playHandler(cmd *cobra.Command, args []string) {
	opts, err := playOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := play(ctx, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info().Msg("match interrupted")
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playOptions folds the flags and the environment into a validated setup
func playOptions() (*game.Options, error) {
	gameType, err := game.ParseGameType(playGameType)
	if err != nil {
		return nil, err
	}

	opts := game.DefaultOptions()
	opts.Dim = playDim
	opts.GameType = gameType
	opts.MaxDepth = playMaxDepth
	opts.MinDepth = playMinDepth
	opts.MaxTime = playMaxTime
	opts.MaxTurns = playMaxTurns
	opts.AlphaBeta = playAlphaBeta
	opts.RandomizeMoves = playRandomize
	opts.Heuristic = playHeuristic
	opts.Seed = playSeed
	opts.Broker = playBroker
	if opts.Broker == "" {
		opts.Broker = cfg.Broker
	}

	if err := config.Validate(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

func play(ctx context.Context, opts *game.Options) error {
	search, err := searcher.FromOptions(opts)
	if err != nil {
		return err
	}

	var client *broker.Client
	if opts.Broker != "" {
		client = broker.NewClient(opts.Broker)
	}

	state := game.NewGameState(opts)
	eng := engine.NewEngine(state,
		moverForSide(opts.GameType.HumanAttacker(), search, client),
		moverForSide(opts.GameType.HumanDefender(), search, client))
	eng.Broker = client

	sink := openTrace(opts)
	defer sink.Close()
	eng.Trace = sink

	_, err = eng.Run(ctx)
	return err
}

// moverForSide picks who supplies moves for one side. A human side reads
// the console, unless a broker is configured, in which case the side is
// played by the remote peer
func moverForSide(human bool, search *searcher.Searcher, client *broker.Client) engine.Mover {
	switch {
	case !human:
		return &engine.SearchMover{Searcher: search}
	case client != nil:
		return engine.NewBrokerMover(client)
	default:
		return engine.NewConsoleMover(os.Stdin, os.Stdout)
	}
}

// openTrace opens the game trace file, falling back to no trace rather
// than refusing to play
func openTrace(opts *game.Options) trace.Sink {
	if !playTrace {
		return trace.Nop{}
	}
	path := trace.FileName(opts.AlphaBeta, opts.MaxTime, opts.MaxTurns)
	if cfg.TraceDir != "" {
		path = filepath.Join(cfg.TraceDir, path)
	}
	sink, err := trace.NewFileSink(afero.NewOsFs(), path)
	if err != nil {
		log.Warn().Msgf("cannot open the game trace %s, playing without it: %v", path, err)
		return trace.Nop{}
	}
	return sink
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringVarP(&playGameType, "game-type", "g", "manual", "Who plays which side (manual, attacker, defender, auto)")
	playCmd.Flags().IntVar(&playDim, "dim", 5, "Board dimension")
	playCmd.Flags().IntVar(&playMaxDepth, "max-depth", 4, "Maximum search depth")
	playCmd.Flags().IntVar(&playMinDepth, "min-depth", 2, "Search depth kept even when the time budget runs out")
	playCmd.Flags().DurationVarP(&playMaxTime, "max-time", "t", 5*time.Second, "Search time budget per move")
	playCmd.Flags().IntVarP(&playMaxTurns, "max-turns", "m", 100, "Turn cap; reaching it is a defender win")
	playCmd.Flags().BoolVar(&playAlphaBeta, "alpha-beta", true, "Prune the search with alpha-beta")
	playCmd.Flags().BoolVar(&playRandomize, "randomize", true, "Break heuristic ties at random")
	playCmd.Flags().StringVarP(&playHeuristic, "heuristic", "e", "e0", "Evaluation function (e0, e1, e2)")
	playCmd.Flags().StringVarP(&playBroker, "broker", "b", "", "Move broker URL for networked play")
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "Seed for tie breaking; 0 seeds from the clock")
	playCmd.Flags().BoolVar(&playTrace, "trace", true, "Write the game trace file")
}
