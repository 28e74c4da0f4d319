package game

import "fmt"

const selfDestructDamage = 2

// PerformMove validates and applies a move for the side to move. It
// returns whether the move was applied and a line of text describing the
// outcome, suitable for the console and the game trace
func (g *GameState) PerformMove(move CoordPair) (bool, string) {
	return g.performMove(move, true)
}

// Apply is the silent variant used by the search: identical board
// effects, no narration
func (g *GameState) Apply(move CoordPair) bool {
	ok, _ := g.performMove(move, false)
	return ok
}

func (g *GameState) performMove(move CoordPair, narrate bool) (bool, string) {
	if !g.IsValidMove(move) {
		return false, "rejected: " + g.rejectReason(move)
	}
	src := g.Get(move.Src)
	dst := g.Get(move.Dst)

	switch {
	case g.IsInRepair(move):
		amount := src.RepairAmount(dst)
		if amount == 0 || dst.Health == MaxHealth {
			// IsInRepair guarantees a positive amount; kept as a guard
			// against a repair that would change nothing
			return false, "rejected: nothing to repair"
		}
		var msg string
		if narrate {
			msg = fmt.Sprintf("%s repaired %d health on %s", src, amount, dst)
		}
		g.ModHealth(move.Dst, amount)
		return true, msg

	case dst != nil && dst.Player != src.Player:
		var msg string
		if narrate {
			msg = fmt.Sprintf("%s attacked %s: dealt %d damage, took %d",
				src, dst, src.DamageAmount(dst), dst.DamageAmount(src))
		}
		g.resolveAttack(move.Src, move.Dst)
		return true, msg

	case move.Src == move.Dst:
		return true, g.selfDestruct(move.Src, narrate)

	default:
		g.Set(move.Dst, src)
		g.Set(move.Src, nil)
		if !narrate {
			return true, ""
		}
		return true, fmt.Sprintf("%s moved from %s to %s", src, move.Src, move.Dst)
	}
}

// rejectReason explains why a move failed validation
func (g *GameState) rejectReason(move CoordPair) string {
	src := g.Get(move.Src)
	switch {
	case !g.ValidCoord(move.Src) || !g.ValidCoord(move.Dst):
		return "coordinates are off the board"
	case src == nil:
		return "no unit at " + move.Src.String()
	case src.Player != g.NextPlayer:
		return move.Src.String() + " is not your unit"
	default:
		return "the move breaks the movement rules"
	}
}

// resolveAttack applies a simultaneous exchange: both damage amounts are
// computed from pre-attack health before either unit is hurt, so mutually
// fatal exchanges kill both
func (g *GameState) resolveAttack(src, dst Coord) {
	attacker, defender := g.Get(src), g.Get(dst)
	toDefender := attacker.DamageAmount(defender)
	toAttacker := defender.DamageAmount(attacker)
	attacker.ModHealth(-toAttacker)
	defender.ModHealth(-toDefender)
	g.removeDead(src)
	g.removeDead(dst)
}

// selfDestruct removes the unit at c and deals fixed splash damage to
// every occupied cell around it, diagonals included. Neighbors that fall
// off the board are skipped
func (g *GameState) selfDestruct(c Coord, narrate bool) string {
	unit := *g.Get(c)
	g.ModHealth(c, -MaxHealth)
	hit := 0
	for _, n := range c.Ring(1) {
		if n == c {
			continue
		}
		if g.Get(n) != nil {
			g.ModHealth(n, -selfDestructDamage)
			hit++
		}
	}
	if !narrate {
		return ""
	}
	return fmt.Sprintf("%s self-destructed, dealing %d damage to %d neighboring units",
		&unit, selfDestructDamage, hit)
}
