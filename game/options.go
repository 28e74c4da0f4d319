package game

import (
	"fmt"
	"time"
)

// GameType selects which sides are played by a human and which by the
// computer
type GameType int

const (
	AttackerVsDefender GameType = iota // both sides human
	AttackerVsComp                     // human attacker, computer defender
	CompVsDefender                     // computer attacker, human defender
	CompVsComp                         // both sides computer
)

func (g GameType) String() string {
	switch g {
	case AttackerVsDefender:
		return "manual"
	case AttackerVsComp:
		return "attacker"
	case CompVsDefender:
		return "defender"
	default:
		return "auto"
	}
}

// ParseGameType maps the mode names used on the command line
func ParseGameType(s string) (GameType, error) {
	switch s {
	case "manual":
		return AttackerVsDefender, nil
	case "attacker":
		return AttackerVsComp, nil
	case "defender":
		return CompVsDefender, nil
	case "auto":
		return CompVsComp, nil
	default:
		return 0, fmt.Errorf("unknown game type %q (want manual, attacker, defender or auto)", s)
	}
}

// HumanAttacker reports whether the attacker side takes moves from a
// human (or, with a broker configured, from the remote peer)
func (g GameType) HumanAttacker() bool {
	return g == AttackerVsDefender || g == AttackerVsComp
}

// HumanDefender is the defender-side counterpart of HumanAttacker
func (g GameType) HumanDefender() bool {
	return g == AttackerVsDefender || g == CompVsDefender
}

// Options is the per-game configuration. It is fixed once play starts and
// shared by reference between a state and all its search clones
type Options struct {
	Dim            int           `validate:"gte=4,lte=10"`
	GameType       GameType      `validate:"gte=0,lte=3"`
	MaxDepth       int           `validate:"gte=2,lte=20"`
	MinDepth       int           `validate:"gte=1,ltefield=MaxDepth"`
	MaxTime        time.Duration `validate:"gt=0"`
	MaxTurns       int           `validate:"gte=1"`
	AlphaBeta      bool
	RandomizeMoves bool
	Heuristic      string `validate:"oneof=e0 e1 e2"`
	Broker         string `validate:"omitempty,url"`
	Seed           uint64
}

// DefaultOptions returns the standard game setup: a 5x5 board, a hundred
// turn cap and a five second search budget
func DefaultOptions() *Options {
	return &Options{
		Dim:            5,
		GameType:       AttackerVsDefender,
		MaxDepth:       4,
		MinDepth:       2,
		MaxTime:        5 * time.Second,
		MaxTurns:       100,
		AlphaBeta:      true,
		RandomizeMoves: true,
		Heuristic:      "e0",
	}
}
