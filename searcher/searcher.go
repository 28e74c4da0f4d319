package searcher

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"wargame/game"
)

// ErrNoMoves is returned when the side to move has no candidates at all;
// the match cannot continue
var ErrNoMoves = errors.New("no candidate moves")

// Score bounds. Backed-up values always stay inside this window, so it
// doubles as the starting alpha-beta window
const (
	MaxScore = 2_000_000_000
	MinScore = -2_000_000_000
)

type Option func(*Searcher)

// Searcher picks computer moves: it grows a bounded move tree, attaches a
// heuristic score to every node and backs the leaf scores up with minimax
type Searcher struct {
	maxDepth  int
	minDepth  int
	maxTime   time.Duration
	alphaBeta bool
	randomize bool
	heuristic game.Heuristic
	rng       *rand.Rand
}

func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

func WithMinDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.minDepth = depth
		}
	}
}

func WithMaxTime(limit time.Duration) Option {
	return func(s *Searcher) {
		if limit > 0 {
			s.maxTime = limit
		}
	}
}

func WithAlphaBeta(enabled bool) Option {
	return func(s *Searcher) {
		s.alphaBeta = enabled
	}
}

func WithRandomize(enabled bool) Option {
	return func(s *Searcher) {
		s.randomize = enabled
	}
}

func WithHeuristic(heuristic game.Heuristic) Option {
	return func(s *Searcher) {
		if heuristic != nil {
			s.heuristic = heuristic
		}
	}
}

// WithSeed makes tie-breaking reproducible
func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// NewSearcher applies options over the standard defaults
func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		maxDepth:  4,
		minDepth:  2,
		maxTime:   5 * time.Second,
		alphaBeta: true,
		randomize: true,
		heuristic: game.EvaluatePieces,
	}
	for _, option := range options {
		option(s)
	}
	if s.minDepth > s.maxDepth {
		panic("Minimum search depth exceeds maximum")
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return s
}

// FromOptions builds a Searcher from the per-game options
func FromOptions(opts *game.Options) (*Searcher, error) {
	heuristic, err := game.HeuristicByName(opts.Heuristic)
	if err != nil {
		return nil, err
	}
	options := []Option{
		WithMaxDepth(opts.MaxDepth),
		WithMinDepth(opts.MinDepth),
		WithMaxTime(opts.MaxTime),
		WithAlphaBeta(opts.AlphaBeta),
		WithRandomize(opts.RandomizeMoves),
		WithHeuristic(heuristic),
	}
	if opts.Seed != 0 {
		options = append(options, WithSeed(opts.Seed))
	}
	return NewSearcher(options...), nil
}

// FindMove runs one full search for the side to move on g and returns
// the chosen move with a report on the decision. Search work accumulates
// into g.Stats across the whole match
func (s *Searcher) FindMove(ctx context.Context, g *game.GameState) (game.CoordPair, *Report, error) {
	start := time.Now()
	b := &builder{
		maxDepth:     s.maxDepth,
		minDepth:     s.minDepth,
		deadline:     start.Add(s.maxTime),
		initiator:    g.NextPlayer,
		heuristic:    s.heuristic,
		evalsByDepth: map[int]uint64{},
	}
	root, err := b.grow(ctx, g)
	if err != nil {
		return game.CoordPair{}, nil, err
	}
	if len(root.children) == 0 {
		return game.CoordPair{}, nil, ErrNoMoves
	}

	move, score := s.optimalMove(root)
	elapsed := time.Since(start)
	b.flush(g.Stats, elapsed)
	log.Debug().Msgf("%s searched %d positions in %.2fs and chose %s (score %d)",
		g.NextPlayer, b.total, elapsed.Seconds(), move, score)
	return move, newReport(move, score, elapsed, g.Stats), nil
}
