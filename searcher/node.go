package searcher

import (
	"context"
	"time"

	"wargame/game"
)

// node is one position in the move tree. Trees are rebuilt from scratch
// for every decision and discarded once the move is chosen
type node struct {
	move     game.CoordPair // the move that produced this position
	score    int            // heuristic value from the initiator's perspective
	depth    int
	children []*node
}

func (n *node) leaf() bool {
	return len(n.children) == 0
}

// builder grows one decision tree and carries the per-search counters
// that are folded into the match statistics afterwards
type builder struct {
	maxDepth  int
	minDepth  int
	deadline  time.Time
	initiator game.Player
	heuristic game.Heuristic

	total        uint64
	branchSum    uint64
	expanded     uint64
	evalsByDepth map[int]uint64
}

// grow builds the whole tree under the position g
func (b *builder) grow(ctx context.Context, g *game.GameState) (*node, error) {
	root := &node{}
	if err := b.expand(ctx, root, g); err != nil {
		return nil, err
	}
	return root, nil
}

// expand attaches one child per candidate move and recurses. Expansion
// stops at the depth bound and at decided positions; once the time budget
// runs out it also stops below the minimum depth, so a slow position
// still gets a full shallow tree
func (b *builder) expand(ctx context.Context, n *node, g *game.GameState) error {
	if n.depth+1 > b.maxDepth-1 {
		return nil
	}
	if g.IsFinished() {
		return nil
	}
	if n.depth+1 > b.minDepth && time.Now().After(b.deadline) {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, move := range g.MoveCandidates() {
		clone := g.Clone()
		clone.Apply(move)
		clone.NextTurn()
		child := &node{
			move:  move,
			score: b.heuristic(clone, b.initiator),
			depth: n.depth + 1,
		}
		b.total++
		b.evalsByDepth[child.depth]++
		n.children = append(n.children, child)
		if err := b.expand(ctx, child, clone); err != nil {
			return err
		}
	}
	if len(n.children) > 0 {
		b.branchSum += uint64(len(n.children))
		b.expanded++
	}
	return nil
}

// flush folds this search's counters into the match statistics
func (b *builder) flush(stats *game.Stats, elapsed time.Duration) {
	for depth, count := range b.evalsByDepth {
		stats.EvalsByDepth[depth] += count
	}
	stats.TotalEvals += b.total
	stats.BranchSum += b.branchSum
	stats.ExpandedNodes += b.expanded
	stats.TotalSeconds += elapsed.Seconds()
}
