package searcher

import (
	"fmt"
	"time"

	"wargame/game"
)

// Report captures one search decision together with a snapshot of the
// cumulative match statistics, formatted the way the console and the
// game trace show them
type Report struct {
	Move    game.CoordPair
	Score   int
	Elapsed time.Duration

	evals       string
	depthCounts string
	depthShares string
	branching   float64
	evalRate    float64
}

func newReport(move game.CoordPair, score int, elapsed time.Duration, stats *game.Stats) *Report {
	return &Report{
		Move:        move,
		Score:       score,
		Elapsed:     elapsed,
		evals:       stats.Evals(),
		depthCounts: stats.DepthCounts(),
		depthShares: stats.DepthPercents(),
		branching:   stats.AverageBranching(),
		evalRate:    stats.EvalsPerSecond(),
	}
}

// Lines renders the report in the order the match log records it
func (r *Report) Lines() []string {
	lines := []string{
		fmt.Sprintf("Heuristic score: %d", r.Score),
		fmt.Sprintf("Elapsed time: %.1fs", r.Elapsed.Seconds()),
		fmt.Sprintf("Cumulative evals: %s", r.evals),
		fmt.Sprintf("Cumulative evals by depth: %s", r.depthCounts),
		fmt.Sprintf("Cumulative %% evals by depth: %s", r.depthShares),
		fmt.Sprintf("Average branching factor: %.1f", r.branching),
	}
	if r.evalRate > 0 {
		lines = append(lines, fmt.Sprintf("Eval perf.: %.1fk/s", r.evalRate/1000))
	}
	return lines
}
