package policy

import "draughts/game"

// random picks uniformly among all legal moves.
func (h *heuristics) random(b *game.Board, team game.Team) *game.Move {
	moves := game.MovesForTeam(b, team)
	if len(moves) == 0 {
		return nil
	}
	mv := moves[h.rng.Intn(len(moves))]
	return &mv
}

// greedy takes the deepest capture chain on offer, preferring a safe landing
// square. When no capture exists it falls back to a uniform random move.
func (h *heuristics) greedy(b *game.Board, team game.Team) *game.Move {
	moves := game.MovesForTeam(b, team)
	if len(moves) == 0 {
		return nil
	}
	if !moves[0].IsCapture(b) {
		mv := moves[h.rng.Intn(len(moves))]
		return &mv
	}

	scored := make([]scoredMove, 0, len(moves))
	for _, mv := range moves {
		ctx, ok := describeMove(b, mv)
		if !ok {
			continue
		}
		score := float64(ctx.chainDepth) * 100
		if ctx.destSafe {
			score += 50
		}
		score += h.noise()
		scored = append(scored, scoredMove{move: mv, score: score})
	}
	return h.pickBanded(scored, func(max float64) float64 {
		return max // Exact-max band
	})
}

// superGreedy extends greedy with advancement, centralization, and a steep
// penalty for every friendly piece the move leaves exposed.
func (h *heuristics) superGreedy(b *game.Board, team game.Team) *game.Move {
	moves := game.MovesForTeam(b, team)
	scored := make([]scoredMove, 0, len(moves))
	for _, mv := range moves {
		ctx, ok := describeMove(b, mv)
		if !ok {
			continue
		}
		score := float64(ctx.chainDepth) * 200
		if ctx.destSafe {
			score += 100
		} else {
			score -= 60
		}
		score += float64(game.Advancement(ctx.afterPiece)) * 10
		score += game.CenterBonus(mv.To.X, mv.To.Y)
		score -= 120 * float64(ctx.exposed)
		score += h.noise()
		scored = append(scored, scoredMove{move: mv, score: score})
	}
	return h.pickBanded(scored, func(max float64) float64 {
		if max > 0 {
			return max * 0.9
		}
		return max - 10
	})
}
