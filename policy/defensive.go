package policy

import "draughts/game"

// defensive values escaping threats, safe squares, and keeping the home row
// anchored, and only captures when the landing square is safe.
func (h *heuristics) defensive(b *game.Board, team game.Team) *game.Move {
	moves := game.MovesForTeam(b, team)
	scored := make([]scoredMove, 0, len(moves))
	for _, mv := range moves {
		ctx, ok := describeMove(b, mv)
		if !ok {
			continue
		}
		score := 0.0
		if ctx.threatened && ctx.destSafe {
			score += 500 // Escape from a square the opponent can capture on
		}
		if ctx.destSafe {
			score += 200
		} else {
			score -= 300
		}
		score -= 150 * float64(ctx.exposed)
		if ctx.captured && ctx.destSafe {
			score += 150
		}
		if ctx.mover.Y == game.BackRank(team) {
			score -= 100 // Vacating the home row forfeits the retention bonus
		}
		score += h.noise()
		scored = append(scored, scoredMove{move: mv, score: score})
	}
	return h.pickBanded(scored, func(max float64) float64 {
		return max - 50
	})
}
