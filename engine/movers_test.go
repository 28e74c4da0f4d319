package engine

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wargame/broker"
	"wargame/game"
)

func TestConsoleMoverPromptsAndParses(t *testing.T) {
	// Garbage, an off-board row, then a well-formed move
	input := strings.NewReader("what\nZ5 A0\nA0, B1\n")
	var out bytes.Buffer
	mover := NewConsoleMover(input, &out)

	g := game.NewGameState(game.DefaultOptions())
	move, report, err := mover.ProposeMove(context.Background(), g)
	require.NoError(t, err)
	require.Nil(t, report)
	require.Equal(t, game.CoordPair{Src: game.Coord{Row: 0, Col: 0}, Dst: game.Coord{Row: 1, Col: 1}}, move)

	prompts := strings.Count(out.String(), "Player Attacker, enter your move: ")
	require.Equal(t, 3, prompts, "each bad line earns a fresh prompt")
	require.Equal(t, 2, strings.Count(out.String(), "Invalid coordinates! Try again."))
}

func TestConsoleMoverEOF(t *testing.T) {
	mover := NewConsoleMover(strings.NewReader(""), io.Discard)
	_, _, err := mover.ProposeMove(context.Background(), game.NewGameState(game.DefaultOptions()))
	require.ErrorIs(t, err, io.EOF)
}

func TestConsoleMoverCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mover := NewConsoleMover(strings.NewReader("A0 B1\n"), io.Discard)
	_, _, err := mover.ProposeMove(ctx, game.NewGameState(game.DefaultOptions()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBrokerMoverReturnsExpectedTurn(t *testing.T) {
	server := httptest.NewServer(broker.NewRelay().Handler())
	defer server.Close()
	client := broker.NewClient(server.URL)

	move := game.CoordPair{Src: game.Coord{Row: 2, Col: 4}, Dst: game.Coord{Row: 1, Col: 4}}
	require.True(t, client.PostMove(context.Background(), move, 2))

	mover := NewBrokerMover(client)
	g := game.NewGameState(game.DefaultOptions()) // turn 1, waiting for turn 2

	got, report, err := mover.ProposeMove(context.Background(), g)
	require.NoError(t, err)
	require.Nil(t, report)
	require.Equal(t, move, got)
}

func TestBrokerMoverIgnoresStaleMoves(t *testing.T) {
	server := httptest.NewServer(broker.NewRelay().Handler())
	defer server.Close()
	client := broker.NewClient(server.URL)

	// Only a move for a much later turn is available
	stale := game.CoordPair{Src: game.Coord{Row: 1, Col: 1}, Dst: game.Coord{Row: 2, Col: 1}}
	require.True(t, client.PostMove(context.Background(), stale, 5))

	mover := NewBrokerMover(client)
	mover.Poll = 5 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, _, err := mover.ProposeMove(ctx, game.NewGameState(game.DefaultOptions()))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMoverLabels(t *testing.T) {
	require.Equal(t, "Player", (&ConsoleMover{}).Label())
	require.Equal(t, "Computer", (&SearchMover{}).Label())
	require.Equal(t, "Broker", (&BrokerMover{}).Label())
	require.True(t, (&ConsoleMover{}).Retryable())
	require.False(t, (&SearchMover{}).Retryable())
	require.True(t, (&BrokerMover{}).Retryable())
}
