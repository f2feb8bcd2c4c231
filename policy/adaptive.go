package policy

import "draughts/game"

// adaptiveWeights is one sub-strategy's feature weighting.
type adaptiveWeights struct {
	capture  float64 // Per chain-capture depth
	safe     float64 // Safe destination bonus
	unsafe   float64 // Unsafe destination penalty
	advance  float64 // Per row advanced
	center   float64 // Center bonus multiplier
	exposure float64 // Per newly exposed friendly piece
	escape   float64 // Escaping a threatened square into safety
}

// Sub-strategy weights keyed by material situation: protect a lead, chase a
// deficit, otherwise play for position.
var (
	aheadWeights  = adaptiveWeights{capture: 80, safe: 200, unsafe: 250, advance: 2, center: 2, exposure: 80, escape: 400}
	behindWeights = adaptiveWeights{capture: 180, safe: 60, unsafe: 40, advance: 15, center: 4, exposure: 100, escape: 100}
	evenWeights   = adaptiveWeights{capture: 120, safe: 100, unsafe: 100, advance: 8, center: 8, exposure: 130, escape: 200}
)

// materialSwing at which adaptive switches sub-strategy; 20 is two men.
const materialSwing = 20

// adaptive computes the material balance first and scores moves with the
// matching sub-strategy's weights.
func (h *heuristics) adaptive(b *game.Board, team game.Team) *game.Move {
	advantage := b.Material(team) - b.Material(team.Opponent())
	weights := evenWeights
	switch {
	case advantage >= materialSwing:
		weights = aheadWeights
	case advantage <= -materialSwing:
		weights = behindWeights
	}

	moves := game.MovesForTeam(b, team)
	scored := make([]scoredMove, 0, len(moves))
	for _, mv := range moves {
		ctx, ok := describeMove(b, mv)
		if !ok {
			continue
		}
		score := float64(ctx.chainDepth) * weights.capture
		if ctx.destSafe {
			score += weights.safe
		} else {
			score -= weights.unsafe
		}
		if ctx.threatened && ctx.destSafe {
			score += weights.escape
		}
		score += float64(game.Advancement(ctx.afterPiece)) * weights.advance
		score += game.CenterBonus(mv.To.X, mv.To.Y) * weights.center
		score -= weights.exposure * float64(ctx.exposed)
		score += h.noise()
		scored = append(scored, scoredMove{move: mv, score: score})
	}
	return h.pickBanded(scored, func(max float64) float64 {
		return max - 20
	})
}
