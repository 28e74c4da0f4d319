package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wargame/game"
)

// buildTree wires up a two-ply tree by hand:
//
//	root -> a (min level) -> leaves 3, 12
//	     -> b (min level) -> leaves 2, 8
//	     -> c (leaf, score 5)
//
// The initiator maximizes over {min(3,12), min(2,8), 5} = {3, 2, 5}
func buildTree() *node {
	leaf := func(score int) *node { return &node{score: score, depth: 2} }
	a := &node{score: 999, depth: 1, children: []*node{leaf(3), leaf(12)}}
	b := &node{score: -999, depth: 1, children: []*node{leaf(2), leaf(8)}}
	c := &node{score: 5, depth: 1}
	return &node{children: []*node{a, b, c}}
}

func TestMinimaxBacksUpLeafScores(t *testing.T) {
	root := buildTree()

	// Interior scores (999, -999) must not leak into the result
	require.Equal(t, 3, minimax(root.children[0], 4, false))
	require.Equal(t, 2, minimax(root.children[1], 4, false))
	require.Equal(t, 5, minimax(root.children[2], 4, false))
}

func TestAlphaBetaMatchesMinimaxOnTree(t *testing.T) {
	root := buildTree()
	for i, child := range root.children {
		want := minimax(child, 4, false)
		got := alphabeta(child, 4, MinScore, MaxScore, false)
		require.Equal(t, want, got, "branch %d", i)
	}
}

func TestOptimalMovePicksBestBranch(t *testing.T) {
	root := buildTree()
	root.children[0].move = game.CoordPair{Src: game.Coord{Row: 0, Col: 0}, Dst: game.Coord{Row: 0, Col: 1}}
	root.children[1].move = game.CoordPair{Src: game.Coord{Row: 1, Col: 0}, Dst: game.Coord{Row: 1, Col: 1}}
	root.children[2].move = game.CoordPair{Src: game.Coord{Row: 2, Col: 0}, Dst: game.Coord{Row: 2, Col: 1}}

	for _, alphaBeta := range []bool{true, false} {
		s := NewSearcher(WithAlphaBeta(alphaBeta), WithRandomize(false))
		move, score := s.optimalMove(root)
		require.Equal(t, 5, score)
		require.Equal(t, root.children[2].move, move, "alphaBeta=%v", alphaBeta)
	}
}

func TestOptimalMoveTieBreak(t *testing.T) {
	tied := func() *node {
		return &node{children: []*node{
			{move: game.CoordPair{Src: game.Coord{Row: 0, Col: 0}, Dst: game.Coord{Row: 0, Col: 1}}, score: 7, depth: 1},
			{move: game.CoordPair{Src: game.Coord{Row: 1, Col: 0}, Dst: game.Coord{Row: 1, Col: 1}}, score: 7, depth: 1},
			{move: game.CoordPair{Src: game.Coord{Row: 2, Col: 0}, Dst: game.Coord{Row: 2, Col: 1}}, score: 1, depth: 1},
		}}
	}

	t.Run("randomization off takes the first best", func(t *testing.T) {
		s := NewSearcher(WithRandomize(false))
		move, score := s.optimalMove(tied())
		require.Equal(t, 7, score)
		require.Equal(t, game.Coord{Row: 0, Col: 0}, move.Src)
	})

	t.Run("seeded randomization is reproducible", func(t *testing.T) {
		first, _ := NewSearcher(WithSeed(99)).optimalMove(tied())
		second, _ := NewSearcher(WithSeed(99)).optimalMove(tied())
		require.Equal(t, first, second)
	})

	t.Run("the losing branch is never picked", func(t *testing.T) {
		for seed := uint64(1); seed <= 20; seed++ {
			move, _ := NewSearcher(WithSeed(seed)).optimalMove(tied())
			require.NotEqual(t, game.Coord{Row: 2, Col: 0}, move.Src, "seed %d", seed)
		}
	})
}
