package searcher

import (
	"math"

	"draughts/game"

	"golang.org/x/exp/rand"
)

// Minimax is a depth-limited alpha-beta searcher over cloned boards. It holds
// no state between calls beyond its configuration.
type Minimax struct {
	depth int
	rng   *rand.Rand
}

type MinimaxOption func(*Minimax)

func WithDepth(depth int) MinimaxOption {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func NewMinimax(rng *rand.Rand, options ...MinimaxOption) *Minimax {
	m := &Minimax{
		depth: DefaultMinimaxDepth,
		rng:   rng,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove scores every legal move for the team one ply down and keeps the
// extremum: max for Team1, min for Team2. Uniform noise breaks exact ties so
// two minimax players do not reproduce identical games. Returns nil when the
// team has no legal moves.
func (m *Minimax) FindMove(b *game.Board, team game.Team) *game.Move {
	moves := game.MovesForTeam(b, team)
	if len(moves) == 0 {
		return nil
	}

	var best *game.Move
	bestScore := math.Inf(-1)
	if team == game.Team2 {
		bestScore = math.Inf(1)
	}
	for i, mv := range moves {
		next, _, err := game.ApplyMove(b, mv.PieceID, mv.To)
		if err != nil {
			continue
		}
		score := search(&next, m.depth-1, math.Inf(-1), math.Inf(1), team.Opponent(), m.depth)
		score += m.rng.Float64()*2*noiseSpread - noiseSpread
		if (team == game.Team1 && score > bestScore) ||
			(team == game.Team2 && score < bestScore) {
			bestScore = score
			best = &moves[i]
		}
	}
	return best
}

// search recurses to the depth limit with alpha-beta pruning. Team1 maximizes,
// Team2 minimizes. Terminal nodes score ±(WinScore − plies from root) so a
// quicker forced win outranks a slower one.
func search(b *game.Board, depth int, alpha, beta float64, side game.Team, maxDepth int) float64 {
	if over, winner := game.Winner(b); over {
		v := float64(game.WinScore - (maxDepth - depth))
		if winner == game.Team1 {
			return v
		}
		return -v
	}
	if depth <= 0 {
		return game.Evaluate(b, 0)
	}

	moves := orderCapturesFirst(b, game.MovesForTeam(b, side))
	if side == game.Team1 {
		best := math.Inf(-1)
		for _, mv := range moves {
			next, _, err := game.ApplyMove(b, mv.PieceID, mv.To)
			if err != nil {
				continue
			}
			v := search(&next, depth-1, alpha, beta, side.Opponent(), maxDepth)
			if v > best {
				best = v
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, mv := range moves {
		next, _, err := game.ApplyMove(b, mv.PieceID, mv.To)
		if err != nil {
			continue
		}
		v := search(&next, depth-1, alpha, beta, side.Opponent(), maxDepth)
		if v < best {
			best = v
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// orderCapturesFirst stably partitions captures before quiet moves to improve
// pruning efficiency.
func orderCapturesFirst(b *game.Board, moves []game.Move) []game.Move {
	ordered := make([]game.Move, 0, len(moves))
	var quiet []game.Move
	for _, mv := range moves {
		if mv.IsCapture(b) {
			ordered = append(ordered, mv)
		} else {
			quiet = append(quiet, mv)
		}
	}
	return append(ordered, quiet...)
}
