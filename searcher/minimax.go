package searcher

import "wargame/game"

// optimalMove evaluates each of the root's children with a depth-limited
// back-up and returns the best move for the initiator. Ties are broken
// uniformly at random when randomization is on, otherwise the first best
// branch wins
func (s *Searcher) optimalMove(root *node) (game.CoordPair, int) {
	best := MinScore - 1
	var ties []*node
	for _, child := range root.children {
		value := s.backedUp(child, s.maxDepth, false)
		switch {
		case value > best:
			best = value
			ties = append(ties[:0], child)
		case value == best:
			ties = append(ties, child)
		}
	}

	chosen := ties[0]
	if s.randomize && len(ties) > 1 {
		chosen = ties[s.rng.Intn(len(ties))]
	}
	return chosen.move, best
}

// backedUp scores one root branch. The alpha-beta window restarts per
// branch, so pruning can never change the value a branch reports, only
// how much of its subtree gets visited
func (s *Searcher) backedUp(n *node, depth int, maximizing bool) int {
	if s.alphaBeta {
		return alphabeta(n, depth, MinScore, MaxScore, maximizing)
	}
	return minimax(n, depth, maximizing)
}

// minimax backs up leaf scores through alternating maximizing and
// minimizing levels. Interior scores are ignored: a node's value is the
// value of its subtree
func minimax(n *node, depth int, maximizing bool) int {
	if depth == 0 || n.leaf() {
		return n.score
	}
	if maximizing {
		value := MinScore
		for _, child := range n.children {
			if v := minimax(child, depth-1, false); v > value {
				value = v
			}
		}
		return value
	}
	value := MaxScore
	for _, child := range n.children {
		if v := minimax(child, depth-1, true); v < value {
			value = v
		}
	}
	return value
}

// alphabeta computes the same value as minimax while skipping subtrees
// that cannot influence it
func alphabeta(n *node, depth, alpha, beta int, maximizing bool) int {
	if depth == 0 || n.leaf() {
		return n.score
	}
	if maximizing {
		value := MinScore
		for _, child := range n.children {
			if v := alphabeta(child, depth-1, alpha, beta, false); v > value {
				value = v
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				break
			}
		}
		return value
	}
	value := MaxScore
	for _, child := range n.children {
		if v := alphabeta(child, depth-1, alpha, beta, true); v < value {
			value = v
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			break
		}
	}
	return value
}
