package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"wargame/broker"
	"wargame/game"
	"wargame/searcher"
)

// ConsoleMover reads moves typed by a human, re-prompting until the text
// parses as a pair of on-board coordinates. Rule checks happen later in
// the engine, which asks again on rejection
type ConsoleMover struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsoleMover(in io.Reader, out io.Writer) *ConsoleMover {
	return &ConsoleMover{scanner: bufio.NewScanner(in), out: out}
}

func (m *ConsoleMover) Label() string { return "Player" }

func (m *ConsoleMover) Retryable() bool { return true }

func (m *ConsoleMover) ProposeMove(ctx context.Context, g *game.GameState) (game.CoordPair, *searcher.Report, error) {
	for {
		if err := ctx.Err(); err != nil {
			return game.CoordPair{}, nil, err
		}
		fmt.Fprintf(m.out, "Player %s, enter your move: ", g.NextPlayer)
		if !m.scanner.Scan() {
			if err := m.scanner.Err(); err != nil {
				return game.CoordPair{}, nil, fmt.Errorf("reading move: %w", err)
			}
			return game.CoordPair{}, nil, io.EOF
		}
		move, ok := game.ParseCoordPair(m.scanner.Text())
		if !ok || !g.ValidCoord(move.Src) || !g.ValidCoord(move.Dst) {
			fmt.Fprintln(m.out, "Invalid coordinates! Try again.")
			continue
		}
		return move, nil, nil
	}
}

// SearchMover picks moves with the minimax searcher
type SearchMover struct {
	Searcher *searcher.Searcher
}

func (m *SearchMover) Label() string { return "Computer" }

func (m *SearchMover) Retryable() bool { return false }

func (m *SearchMover) ProposeMove(ctx context.Context, g *game.GameState) (game.CoordPair, *searcher.Report, error) {
	return m.Searcher.FindMove(ctx, g)
}

// BrokerMover plays the moves a remote peer publishes on the game
// broker. It polls until the move for the expected turn shows up or the
// context is cancelled
type BrokerMover struct {
	Client *broker.Client
	Poll   time.Duration
}

func NewBrokerMover(client *broker.Client) *BrokerMover {
	return &BrokerMover{Client: client, Poll: 100 * time.Millisecond}
}

func (m *BrokerMover) Label() string { return "Broker" }

func (m *BrokerMover) Retryable() bool { return true }

func (m *BrokerMover) ProposeMove(ctx context.Context, g *game.GameState) (game.CoordPair, *searcher.Report, error) {
	poll := m.Poll
	if poll <= 0 {
		poll = 100 * time.Millisecond
	}
	want := g.TurnsPlayed + 1
	log.Info().Msgf("waiting for the turn %d move from the %s", want, m.Client)
	for {
		if move := m.Client.FetchMove(ctx, want); move != nil {
			return *move, nil, nil
		}
		select {
		case <-ctx.Done():
			return game.CoordPair{}, nil, ctx.Err()
		case <-time.After(poll):
		}
	}
}
