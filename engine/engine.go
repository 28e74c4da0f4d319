// Package engine drives a match from the opening deployment to a winner.
// It renders the board, asks the configured mover of the side to move for
// a move, applies it through the rules and narrates everything to the
// console and the game trace.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"wargame/broker"
	"wargame/game"
	"wargame/searcher"
	"wargame/trace"
)

// Mover supplies moves for one side. ProposeMove blocks until it has a
// move for the side to move on g; the report is non-nil only for movers
// that search
type Mover interface {
	ProposeMove(ctx context.Context, g *game.GameState) (game.CoordPair, *searcher.Report, error)
	// Retryable reports whether a rejected proposal should simply be
	// requested again. Human input retries; a searcher proposing an
	// illegal move is a bug and aborts the match
	Retryable() bool
	// Label names the mover kind in narration, e.g. "Player"
	Label() string
}

// Engine runs one match to completion
type Engine struct {
	MatchID  uuid.UUID
	State    *game.GameState
	Attacker Mover
	Defender Mover
	Trace    trace.Sink
	Broker   *broker.Client // optional; computer moves are posted here
	Out      io.Writer
}

func NewEngine(state *game.GameState, attacker, defender Mover) *Engine {
	return &Engine{
		MatchID:  uuid.New(),
		State:    state,
		Attacker: attacker,
		Defender: defender,
		Trace:    trace.Nop{},
		Out:      os.Stdout,
	}
}

// Run plays the match until someone wins and returns the winner. The
// context cancels waiting movers, which aborts the match
func (e *Engine) Run(ctx context.Context) (game.Player, error) {
	e.printf("Match %s: %s vs %s on a %dx%d board, %d turn cap\n",
		e.MatchID, e.Attacker.Label(), e.Defender.Label(),
		e.State.Options.Dim, e.State.Options.Dim, e.State.Options.MaxTurns)
	log.Info().Msgf("match %s started (%s)", e.MatchID, e.State.Options.GameType)

	for {
		e.printf("\n%s", e.State)
		if winner, over := e.State.HasWinner(); over {
			e.printf("\n%s wins in %d turns!\n", winner, e.State.TurnsPlayed-1)
			log.Info().Msgf("match %s: %s wins in %d turns", e.MatchID, winner, e.State.TurnsPlayed-1)
			return winner, nil
		}
		if err := e.playTurn(ctx); err != nil {
			return 0, err
		}
	}
}

func (e *Engine) playTurn(ctx context.Context) error {
	side := e.State.NextPlayer
	mover := e.moverFor(side)

	for {
		move, report, err := mover.ProposeMove(ctx, e.State)
		if err != nil {
			if errors.Is(err, searcher.ErrNoMoves) {
				e.printf("\nComputer %s doesn't know what to do!\n", side)
			}
			return fmt.Errorf("%s move: %w", side, err)
		}
		if report != nil {
			for _, line := range report.Lines() {
				e.printf("%s\n", line)
			}
		}

		ok, outcome := e.State.PerformMove(move)
		e.printf("\n%s %s: %s\n", mover.Label(), side, outcome)
		if ok {
			e.State.NextTurn()
			e.postMove(ctx, mover, move)
			return nil
		}
		if !mover.Retryable() {
			return fmt.Errorf("%s proposed an illegal move %s", side, move)
		}
		e.printf("The move is not valid! Try again.\n")
	}
}

func (e *Engine) moverFor(p game.Player) Mover {
	if p == game.Attacker {
		return e.Attacker
	}
	return e.Defender
}

// postMove publishes computer moves so a remote peer can follow the
// match. The turn number is read after NextTurn, which is what the peer
// polls for
func (e *Engine) postMove(ctx context.Context, mover Mover, move game.CoordPair) {
	if e.Broker == nil {
		return
	}
	if _, searches := mover.(*SearchMover); !searches {
		return
	}
	e.Broker.PostMove(ctx, move, e.State.TurnsPlayed)
}

// printf writes to the console and the game trace in step
func (e *Engine) printf(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	fmt.Fprint(e.Out, text)
	e.Trace.WriteString(text)
}
