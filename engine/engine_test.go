package engine

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wargame/broker"
	"wargame/game"
	"wargame/searcher"
)

// bufferSink collects trace output for assertions
type bufferSink struct {
	b strings.Builder
}

func (s *bufferSink) WriteString(text string) { s.b.WriteString(text) }
func (s *bufferSink) Close() error            { return nil }
func (s *bufferSink) String() string          { return s.b.String() }

// stubMover proposes a fixed move; used to exercise rejection handling
type stubMover struct {
	move  game.CoordPair
	retry bool
}

func (s stubMover) ProposeMove(context.Context, *game.GameState) (game.CoordPair, *searcher.Report, error) {
	return s.move, nil, nil
}
func (s stubMover) Retryable() bool { return s.retry }
func (s stubMover) Label() string   { return "Stub" }

func quickSearcher(seed uint64) *SearchMover {
	return &SearchMover{Searcher: searcher.NewSearcher(
		searcher.WithMaxDepth(2),
		searcher.WithMinDepth(1),
		searcher.WithSeed(seed),
	)}
}

func clearBoard(g *game.GameState) {
	for _, c := range game.FromDim(g.Options.Dim).Rectangle() {
		g.Set(c, nil)
	}
}

func TestEngineAutoPlayToTurnCap(t *testing.T) {
	opts := game.DefaultOptions()
	opts.GameType = game.CompVsComp
	opts.MaxTurns = 4

	var out bytes.Buffer
	sink := &bufferSink{}
	eng := NewEngine(game.NewGameState(opts), quickSearcher(1), quickSearcher(2))
	eng.Out = &out
	eng.Trace = sink

	winner, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, game.Defender, winner, "the turn cap falls to the defender")

	console := out.String()
	require.Contains(t, console, "Next player: Attacker")
	require.Contains(t, console, "Next player: Defender")
	require.Contains(t, console, "Heuristic score:")
	require.Contains(t, console, "Defender wins in 3 turns!")
	require.Equal(t, console, sink.String(), "trace and console must record the same transcript")
}

func TestEngineRetriesRejectedHumanMove(t *testing.T) {
	opts := game.DefaultOptions()
	opts.MaxTurns = 2

	// First try moves the defender's AI on the attacker's turn; the
	// engine rejects it and asks again
	input := strings.NewReader("A0 B0\nC4 B4\n")
	var out bytes.Buffer
	console := NewConsoleMover(input, &out)

	eng := NewEngine(game.NewGameState(opts), console, quickSearcher(1))
	eng.Out = &out

	winner, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, game.Defender, winner)

	transcript := out.String()
	require.Contains(t, transcript, "rejected")
	require.Contains(t, transcript, "The move is not valid! Try again.")
	require.Contains(t, transcript, "moved from C4 to B4")
	require.Contains(t, transcript, "Defender wins in 1 turns!")
}

func TestEngineAbortsOnIllegalComputerMove(t *testing.T) {
	bad := stubMover{move: game.CoordPair{Src: game.Coord{Row: 0, Col: 0}, Dst: game.Coord{Row: 1, Col: 0}}}

	var out bytes.Buffer
	eng := NewEngine(game.NewGameState(game.DefaultOptions()), bad, quickSearcher(1))
	eng.Out = &out

	_, err := eng.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "illegal move")
}

func TestEngineReportsNoMoves(t *testing.T) {
	g := game.NewGameState(game.DefaultOptions())
	clearBoard(g)

	var out bytes.Buffer
	eng := NewEngine(g, quickSearcher(1), quickSearcher(2))
	eng.Out = &out

	_, err := eng.Run(context.Background())
	require.ErrorIs(t, err, searcher.ErrNoMoves)
	require.Contains(t, out.String(), "doesn't know what to do")
}

func TestEnginePostsComputerMoves(t *testing.T) {
	server := httptest.NewServer(broker.NewRelay().Handler())
	defer server.Close()
	client := broker.NewClient(server.URL)

	opts := game.DefaultOptions()
	opts.GameType = game.CompVsComp
	opts.MaxTurns = 2

	var out bytes.Buffer
	eng := NewEngine(game.NewGameState(opts), quickSearcher(1), quickSearcher(2))
	eng.Out = &out
	eng.Broker = client

	winner, err := eng.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, game.Defender, winner)

	// The attacker's only move was posted under the turn the peer will
	// be waiting for
	posted := client.FetchMove(context.Background(), 2)
	require.NotNil(t, posted, "the computer move must reach the broker")
}

func TestEngineContextCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	server := httptest.NewServer(broker.NewRelay().Handler())
	defer server.Close()

	// The attacker waits on an empty broker and must give up with the
	// context instead of spinning forever
	waiting := NewBrokerMover(broker.NewClient(server.URL))
	waiting.Poll = 5 * time.Millisecond

	var out bytes.Buffer
	eng := NewEngine(game.NewGameState(game.DefaultOptions()), waiting, quickSearcher(1))
	eng.Out = &out

	_, err := eng.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
