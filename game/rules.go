package game

// directional marks the unit types bound by the combat lock and the
// per-side directional restriction. Viruses and techs move freely
var directional = [5]bool{AI: true, Firewall: true, Program: true}

// IsValidMove validates a move for the side to move. Self-destruct
// (destination equals source) is always available for an owned unit
func (g *GameState) IsValidMove(move CoordPair) bool {
	return g.isValidMoveFor(move, g.NextPlayer)
}

func (g *GameState) isValidMoveFor(move CoordPair, p Player) bool {
	if !g.ValidCoord(move.Src) || !g.ValidCoord(move.Dst) {
		return false
	}
	src := g.Get(move.Src)
	if src == nil || src.Player != p {
		return false
	}
	return g.isLegalMove(move) || move.Src == move.Dst
}

// isLegalMove enforces the combat lock, the directional restriction and
// destination occupancy. It assumes the source holds a unit of the moving
// side
func (g *GameState) isLegalMove(move CoordPair) bool {
	src := g.Get(move.Src)
	dst := g.Get(move.Dst)

	if directional[src.Type] {
		// Locked in place while an enemy is adjacent
		if dst == nil && g.inCombat(move.Src) {
			return false
		}
		// Attackers act up or left, defenders down or right
		adj := move.Src.Adjacent()
		allowed := adj[0:2]
		if src.Player == Defender {
			allowed = adj[2:4]
		}
		if move.Dst != allowed[0] && move.Dst != allowed[1] {
			return false
		}
	}

	if dst != nil && dst.Player == src.Player && !g.IsInRepair(move) {
		return false
	}
	return true
}

// inCombat reports whether the unit at c has an enemy on an orthogonal
// neighbor
func (g *GameState) inCombat(c Coord) bool {
	unit := g.Get(c)
	for _, adj := range c.Adjacent() {
		if other := g.Get(adj); other != nil && other.Player != unit.Player {
			return true
		}
	}
	return false
}

// IsInRepair reports whether the move is a usable repair: two distinct
// cells, same owner, and a positive repair amount
func (g *GameState) IsInRepair(move CoordPair) bool {
	src, dst := g.Get(move.Src), g.Get(move.Dst)
	if src == nil || dst == nil || move.Src == move.Dst {
		return false
	}
	return src.Player == dst.Player && src.RepairAmount(dst) > 0
}

// MoveCandidates returns every valid move for the side to move: the
// passing orthogonal destinations of each unit plus its self-destruct
func (g *GameState) MoveCandidates() []CoordPair {
	return g.moveCandidatesFor(g.NextPlayer)
}

// moveCandidatesFor generates candidates from p's perspective without
// touching whose turn it actually is. The mobility heuristic uses it to
// score both sides of one position
func (g *GameState) moveCandidatesFor(p Player) []CoordPair {
	var moves []CoordPair
	for _, pu := range g.PlayerUnits(p) {
		for _, dst := range pu.Coord.Adjacent() {
			move := CoordPair{pu.Coord, dst}
			if g.isValidMoveFor(move, p) {
				moves = append(moves, move)
			}
		}
		moves = append(moves, CoordPair{pu.Coord, pu.Coord})
	}
	return moves
}
