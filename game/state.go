package game

import (
	"fmt"
	"strings"
)

// PlacedUnit pairs a unit with its board position
type PlacedUnit struct {
	Coord Coord
	Unit  *Unit
}

// GameState is the complete state of one match: the board, whose turn it
// is, and how many turns have been played. Options and Stats are shared
// by reference across clones so search work is accounted to the match
type GameState struct {
	Board       [][]*Unit
	NextPlayer  Player
	TurnsPlayed int
	Options     *Options
	Stats       *Stats

	attackerHasAI bool
	defenderHasAI bool
}

// NewGameState builds the fixed initial deployment for the configured
// board size: the defender holds the top-left corner, the attacker the
// bottom-right. The attacker moves first and the turn counter starts at 1
func NewGameState(opts *Options) *GameState {
	dim := opts.Dim
	board := make([][]*Unit, dim)
	for i := range board {
		board[i] = make([]*Unit, dim)
	}
	g := &GameState{
		Board:         board,
		NextPlayer:    Attacker,
		TurnsPlayed:   1,
		Options:       opts,
		Stats:         NewStats(),
		attackerHasAI: true,
		defenderHasAI: true,
	}

	m := dim - 1
	g.Set(Coord{0, 0}, NewUnit(Defender, AI))
	g.Set(Coord{1, 0}, NewUnit(Defender, Tech))
	g.Set(Coord{0, 1}, NewUnit(Defender, Tech))
	g.Set(Coord{2, 0}, NewUnit(Defender, Firewall))
	g.Set(Coord{0, 2}, NewUnit(Defender, Firewall))
	g.Set(Coord{1, 1}, NewUnit(Defender, Program))

	g.Set(Coord{m, m}, NewUnit(Attacker, AI))
	g.Set(Coord{m - 1, m}, NewUnit(Attacker, Virus))
	g.Set(Coord{m, m - 1}, NewUnit(Attacker, Virus))
	g.Set(Coord{m - 2, m}, NewUnit(Attacker, Program))
	g.Set(Coord{m, m - 2}, NewUnit(Attacker, Program))
	g.Set(Coord{m - 1, m - 1}, NewUnit(Attacker, Firewall))
	return g
}

// Clone deep-copies the board and units for search recursion. Options and
// Stats stay shared with the origin state
func (g *GameState) Clone() *GameState {
	clone := *g
	clone.Board = make([][]*Unit, len(g.Board))
	for i, row := range g.Board {
		clone.Board[i] = make([]*Unit, len(row))
		for j, unit := range row {
			if unit != nil {
				u := *unit
				clone.Board[i][j] = &u
			}
		}
	}
	return &clone
}

// ValidCoord reports whether c lies on this game's board
func (g *GameState) ValidCoord(c Coord) bool {
	return c.Valid(g.Options.Dim)
}

// Get returns the unit at c, or nil for empty and off-board cells
func (g *GameState) Get(c Coord) *Unit {
	if !g.ValidCoord(c) {
		return nil
	}
	return g.Board[c.Row][c.Col]
}

// Set places a unit (or nil) at c. Off-board coordinates are ignored
func (g *GameState) Set(c Coord, u *Unit) {
	if g.ValidCoord(c) {
		g.Board[c.Row][c.Col] = u
	}
}

// ModHealth adjusts the health of the unit at c and removes it from the
// board if that kills it
func (g *GameState) ModHealth(c Coord, delta int) {
	if unit := g.Get(c); unit != nil {
		unit.ModHealth(delta)
		g.removeDead(c)
	}
}

// removeDead clears a dead unit from the board. Every path that can kill
// a unit funnels through here so the cached AI flags stay accurate
func (g *GameState) removeDead(c Coord) {
	unit := g.Get(c)
	if unit == nil || unit.IsAlive() {
		return
	}
	g.Set(c, nil)
	if unit.Type == AI {
		if unit.Player == Attacker {
			g.attackerHasAI = false
		} else {
			g.defenderHasAI = false
		}
	}
}

// PlayerUnits returns the surviving units of p with their positions,
// row-major
func (g *GameState) PlayerUnits(p Player) []PlacedUnit {
	var units []PlacedUnit
	for _, c := range FromDim(g.Options.Dim).Rectangle() {
		if unit := g.Get(c); unit != nil && unit.Player == p {
			units = append(units, PlacedUnit{c, unit})
		}
	}
	return units
}

// NextTurn hands play to the other side and advances the turn counter.
// It does not check whether the game is over
func (g *GameState) NextTurn() {
	g.NextPlayer = g.NextPlayer.Next()
	g.TurnsPlayed++
}

// HasWinner reports the winner, if any. Reaching the turn cap counts as a
// defender win: the attacker failed to break through in time. Losing both
// AIs at once (a self-destruct splash can take out two) also falls to the
// defender
func (g *GameState) HasWinner() (Player, bool) {
	switch {
	case g.TurnsPlayed >= g.Options.MaxTurns:
		return Defender, true
	case g.attackerHasAI && g.defenderHasAI:
		return 0, false
	case g.attackerHasAI:
		return Attacker, true
	default:
		return Defender, true
	}
}

// IsFinished reports whether the match is over
func (g *GameState) IsFinished() bool {
	_, over := g.HasWinner()
	return over
}

// String renders the whole position: turn header, column labels, then one
// row per board row with " . " for empty cells
func (g *GameState) String() string {
	dim := g.Options.Dim
	var b strings.Builder
	fmt.Fprintf(&b, "Next player: %s\n", g.NextPlayer)
	fmt.Fprintf(&b, "Turn # %d\n", g.TurnsPlayed)

	b.WriteString("\n   ")
	for col := 0; col < dim; col++ {
		fmt.Fprintf(&b, " %c  ", colLabels[col])
	}
	b.WriteByte('\n')
	for row := 0; row < dim; row++ {
		fmt.Fprintf(&b, "%c: ", rowLabels[row])
		for col := 0; col < dim; col++ {
			if unit := g.Board[row][col]; unit == nil {
				b.WriteString(" .  ")
			} else {
				fmt.Fprintf(&b, "%s ", unit)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
