package policy

import "draughts/game"

// positional favors cohesive formations that advance as a group, restrict the
// opponent's mobility, and never thin the home row while it still matters.
func (h *heuristics) positional(b *game.Board, team game.Team) *game.Move {
	moves := game.MovesForTeam(b, team)
	scored := make([]scoredMove, 0, len(moves))
	for _, mv := range moves {
		ctx, ok := describeMove(b, mv)
		if !ok {
			continue
		}
		score := float64(cohesion(&ctx.after, mv.To.X, mv.To.Y, team)) * 25
		score += game.CenterBonus(mv.To.X, mv.To.Y) * 10

		// Advancing far ahead of (or lagging behind) the group is penalized
		deviation := float64(game.Advancement(ctx.afterPiece)) - meanAdvancement(&ctx.after, team)
		if deviation < 0 {
			deviation = -deviation
		}
		score -= deviation * 8

		if ctx.mover.Y == game.BackRank(team) && b.CountOnRank(team, game.BackRank(team)) <= 2 {
			score -= 80
		}
		score -= 8 * float64(len(game.MovesForTeam(&ctx.after, team.Opponent())))
		if ctx.destSafe {
			score += 60
		} else {
			score -= 120
		}
		score -= 60 * float64(ctx.exposed)
		if ctx.captured {
			if ctx.destSafe {
				score += 150
			} else {
				score += 20
			}
		}
		score += h.noise()
		scored = append(scored, scoredMove{move: mv, score: score})
	}
	return h.pickBanded(scored, func(max float64) float64 {
		return max - 30
	})
}

func meanAdvancement(b *game.Board, team game.Team) float64 {
	total, n := 0, 0
	for _, p := range b.Pieces {
		if p.Team == team {
			total += game.Advancement(p)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}
