package game

import (
	"fmt"
	"sort"
	"strings"
)

// Stats accumulates search statistics over a whole game. Search clones
// share the pointer with their origin state, so every search performed
// during a match lands in the same accumulator
type Stats struct {
	EvalsByDepth  map[int]uint64
	TotalEvals    uint64
	BranchSum     uint64
	ExpandedNodes uint64
	TotalSeconds  float64
}

func NewStats() *Stats {
	return &Stats{EvalsByDepth: map[int]uint64{}}
}

// Evals formats the cumulative evaluation count compactly
func (s *Stats) Evals() string {
	return formatCount(s.TotalEvals)
}

// DepthCounts formats cumulative evaluations per depth, shallowest first,
// e.g. "1=25 2=610 3=14.9k"
func (s *Stats) DepthCounts() string {
	parts := make([]string, 0, len(s.EvalsByDepth))
	for _, depth := range s.depths() {
		parts = append(parts, fmt.Sprintf("%d=%s", depth, formatCount(s.EvalsByDepth[depth])))
	}
	return strings.Join(parts, " ")
}

// DepthPercents formats each depth's share of all evaluations. Shares
// under one percent keep a decimal so they do not vanish
func (s *Stats) DepthPercents() string {
	if s.TotalEvals == 0 {
		return ""
	}
	parts := make([]string, 0, len(s.EvalsByDepth))
	for _, depth := range s.depths() {
		pct := float64(s.EvalsByDepth[depth]) / float64(s.TotalEvals) * 100
		if pct < 1 {
			parts = append(parts, fmt.Sprintf("%d=%.1f%%", depth, pct))
		} else {
			parts = append(parts, fmt.Sprintf("%d=%.0f%%", depth, pct))
		}
	}
	return strings.Join(parts, " ")
}

// AverageBranching is the mean number of children per expanded node
func (s *Stats) AverageBranching() float64 {
	if s.ExpandedNodes == 0 {
		return 0
	}
	return float64(s.BranchSum) / float64(s.ExpandedNodes)
}

// EvalsPerSecond is the cumulative evaluation throughput
func (s *Stats) EvalsPerSecond() float64 {
	if s.TotalSeconds <= 0 {
		return 0
	}
	return float64(s.TotalEvals) / s.TotalSeconds
}

func (s *Stats) depths() []int {
	depths := make([]int, 0, len(s.EvalsByDepth))
	for depth := range s.EvalsByDepth {
		depths = append(depths, depth)
	}
	sort.Ints(depths)
	return depths
}

// formatCount renders large counters compactly: 1234 becomes "1.2k",
// 5600000 becomes "5.6M"
func formatCount(n uint64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
