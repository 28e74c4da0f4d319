package game

import "fmt"

// Heuristic scores a state from one player's perspective; larger is
// better for that player. Scores are margins: own strength minus the
// opponent's, so the same function serves both sides of the search
type Heuristic func(g *GameState, perspective Player) int

// unitTally aggregates one side's surviving material
type unitTally struct {
	counts [5]int
	units  int
	health int
}

func (g *GameState) tally(p Player) unitTally {
	var t unitTally
	for _, pu := range g.PlayerUnits(p) {
		t.counts[pu.Unit.Type]++
		t.units++
		t.health += pu.Unit.Health
	}
	return t
}

// EvaluatePieces is the plain material heuristic (e0): every ordinary
// unit counts 3 and an AI counts 9999, so AI survival dominates
func EvaluatePieces(g *GameState, perspective Player) int {
	return piecesScore(g.tally(perspective)) - piecesScore(g.tally(perspective.Next()))
}

func piecesScore(t unitTally) int {
	ordinary := t.counts[Tech] + t.counts[Virus] + t.counts[Program] + t.counts[Firewall]
	return 3*ordinary + 9999*t.counts[AI]
}

// EvaluateMobility (e1) weighs material by offensive value and adds the
// margins in available moves and in surviving units
func EvaluateMobility(g *GameState, perspective Player) int {
	opponent := perspective.Next()
	own, opp := g.tally(perspective), g.tally(opponent)
	ownMoves := len(g.moveCandidatesFor(perspective))
	oppMoves := len(g.moveCandidatesFor(opponent))
	return mobilityScore(own) - mobilityScore(opp) +
		(ownMoves - oppMoves) + (own.units - opp.units)
}

func mobilityScore(t unitTally) int {
	return 99999*t.counts[AI] +
		500*(t.counts[Tech]+t.counts[Virus]) +
		100*(t.counts[Firewall]+t.counts[Program])
}

// EvaluateHealth (e2) folds each side's total health into the material
// margin, so chip damage shows up before a unit actually dies
func EvaluateHealth(g *GameState, perspective Player) int {
	return healthScore(g.tally(perspective)) - healthScore(g.tally(perspective.Next()))
}

func healthScore(t unitTally) int {
	return 8000*t.counts[AI] +
		4*t.counts[Virus] +
		3*(t.counts[Tech]+t.counts[Program]) +
		2*t.counts[Firewall] +
		t.health
}

// HeuristicByName maps the e0/e1/e2 option names to evaluators
func HeuristicByName(name string) (Heuristic, error) {
	switch name {
	case "e0":
		return EvaluatePieces, nil
	case "e1":
		return EvaluateMobility, nil
	case "e2":
		return EvaluateHealth, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q (want e0, e1 or e2)", name)
	}
}
