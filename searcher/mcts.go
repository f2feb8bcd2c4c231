package searcher

import (
	"math"

	"draughts/game"

	"golang.org/x/exp/rand"
)

// Evaluate scores a board for the rollout cutoff; positive favors Team1.
type Evaluate func(b *game.Board, depthHint int) float64

// MCTS is a UCB1-guided tree searcher. The tree lives in a node arena indexed
// by int32 so ownership is explicit and the tree can be inspected or
// serialized without chasing pointers.
type MCTS struct {
	iterations int
	rolloutCap int
	evaluate   Evaluate
	rng        *rand.Rand
}

type MCTSOption func(*MCTS)

func WithIterations(iterations int) MCTSOption {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithRolloutCap(moves int) MCTSOption {
	return func(m *MCTS) {
		if moves > 0 {
			m.rolloutCap = moves
		}
	}
}

func WithEvaluationFn(evaluate Evaluate) MCTSOption {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func NewMCTS(rng *rand.Rand, options ...MCTSOption) *MCTS {
	m := &MCTS{ // Default values
		iterations: DefaultIterations,
		rolloutCap: DefaultRolloutCap,
		evaluate:   game.Evaluate,
		rng:        rng,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove runs the iteration budget and returns the robust child: the root
// move with the highest visit count, which is less variance-sensitive than raw
// win rate. Returns nil on a terminal root, and the single available move
// without searching when only one exists.
func (m *MCTS) FindMove(b *game.Board, team game.Team) *game.Move {
	moves := game.MovesForTeam(b, team)
	if len(moves) == 0 {
		return nil
	}
	if len(moves) == 1 {
		mv := moves[0]
		return &mv
	}

	a := &arena{}
	root := a.add(node{
		board:   b.Clone(),
		team:    team,
		parent:  -1,
		untried: moves,
	})

	for i := 0; i < m.iterations; i++ {
		leaf := m.selectNode(a, root)
		leaf = m.expand(a, leaf)
		result := m.rollout(&a.nodes[leaf].board, a.nodes[leaf].team)
		backpropagate(a, leaf, result)
	}

	best := a.nodes[root].children[0]
	for _, ci := range a.nodes[root].children[1:] {
		if a.nodes[ci].visits > a.nodes[best].visits {
			best = ci
		}
	}
	mv := a.nodes[best].move
	return &mv
}

// selectNode descends from idx while the node is non-terminal, fully expanded,
// and has children, following the child maximizing UCB1. Unvisited children
// score +Inf, so every child is tried once before any is revisited.
func (m *MCTS) selectNode(a *arena, idx int32) int32 {
	for {
		n := &a.nodes[idx]
		if len(n.untried) > 0 || len(n.children) == 0 {
			return idx
		}
		lnN := math.Log(float64(n.visits))
		best := n.children[0]
		bestScore := math.Inf(-1)
		for _, ci := range n.children {
			c := &a.nodes[ci]
			if c.visits == 0 {
				best = ci
				break
			}
			score := c.rewards/float64(c.visits) + ExploreC*math.Sqrt(lnN/float64(c.visits))
			if score > bestScore {
				bestScore = score
				best = ci
			}
		}
		idx = best
	}
}

// expand removes one untried move at random, applies it, and adds the child
// node for the resulting board. The child's side to move always flips, even
// when the move continued a mandatory chain capture.
func (m *MCTS) expand(a *arena, idx int32) int32 {
	untried := a.nodes[idx].untried
	if len(untried) == 0 { // Terminal node
		return idx
	}
	j := m.rng.Intn(len(untried))
	mv := untried[j]
	untried[j] = untried[len(untried)-1]
	a.nodes[idx].untried = untried[:len(untried)-1]

	next, _, err := game.ApplyMove(&a.nodes[idx].board, mv.PieceID, mv.To)
	if err != nil {
		return idx
	}
	childTeam := a.nodes[idx].team.Opponent()
	child := a.add(node{
		board:   next,
		team:    childTeam,
		parent:  idx,
		move:    mv,
		untried: game.MovesForTeam(&next, childTeam),
	})
	a.nodes[idx].children = append(a.nodes[idx].children, child)
	return child
}

// rollout plays biased random moves from the board until the game ends or the
// move cap is reached, returning 1 if Team1 won, 0 if Team2 won, and the sign
// of the static evaluation (1/0/0.5) at the cap.
func (m *MCTS) rollout(b *game.Board, side game.Team) float64 {
	board := b.Clone()
	for depth := 0; depth < m.rolloutCap; depth++ {
		moves := game.MovesForTeam(&board, side)
		if len(moves) == 0 { // Game over: side to move has lost
			if side == game.Team1 {
				return 0
			}
			return 1
		}
		mv := m.pickRolloutMove(&board, side, moves)
		next, _, err := game.ApplyMove(&board, mv.PieceID, mv.To)
		if err != nil {
			break
		}
		board = next
		side = side.Opponent()
	}

	switch v := m.evaluate(&board, 0); {
	case v > 0:
		return 1
	case v < 0:
		return 0
	}
	return 0.5
}

// pickRolloutMove applies the rollout bias: captures are already preferred by
// the mandatory-capture filter in MovesForTeam; among quiet moves, 70% of the
// time prefer one with a safe destination if any exist.
func (m *MCTS) pickRolloutMove(b *game.Board, side game.Team, moves []game.Move) game.Move {
	if !moves[0].IsCapture(b) && m.rng.Float64() < safeMoveBias {
		var safe []game.Move
		for _, mv := range moves {
			if game.SquareSafe(b, mv.To.X, mv.To.Y, side) {
				safe = append(safe, mv)
			}
		}
		if len(safe) > 0 {
			return safe[m.rng.Intn(len(safe))]
		}
	}
	return moves[m.rng.Intn(len(moves))]
}

// backpropagate walks from the leaf to the root, crediting each node from the
// perspective of the team that chose it (the parent's side to move). result
// is from Team1's perspective. Flipping this convention silently inverts the
// policy's preferences.
func backpropagate(a *arena, idx int32, result float64) {
	for idx >= 0 {
		n := &a.nodes[idx]
		n.visits++
		perspective := n.team
		if n.parent >= 0 {
			perspective = a.nodes[n.parent].team
		}
		if perspective == game.Team1 {
			n.rewards += result
		} else {
			n.rewards += 1 - result
		}
		idx = n.parent
	}
}
