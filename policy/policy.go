package policy

import (
	"fmt"
	"strings"

	"draughts/game"
	"draughts/searcher"

	"golang.org/x/exp/rand"
)

// ID is the closed set of move-selection strategies.
type ID int

const (
	Random ID = iota
	Greedy
	SuperGreedy
	Defensive
	Adaptive
	Positional
	Minimax
	MCTS
)

var names = map[ID]string{
	Random:      "random",
	Greedy:      "greedy",
	SuperGreedy: "supergreedy",
	Defensive:   "defensive",
	Adaptive:    "adaptive",
	Positional:  "positional",
	Minimax:     "minimax",
	MCTS:        "mcts",
}

func (id ID) String() string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(id))
}

// ParseID maps a policy name to its ID.
func ParseID(name string) (ID, error) {
	for id, n := range names {
		if n == strings.ToLower(name) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown policy %q", name)
}

// All lists every policy ID in a stable order.
func All() []ID {
	return []ID{Random, Greedy, SuperGreedy, Defensive, Adaptive, Positional, Minimax, MCTS}
}

// Func selects a move for a team, or nil when the team has no legal move.
type Func func(b *game.Board, team game.Team) *game.Move

// Params tunes the search-based policies. Zero fields fall back to the
// searcher defaults.
type Params struct {
	MinimaxDepth   int
	MCTSIterations int
	RolloutCap     int
}

// Dispatcher owns the dispatch table mapping each policy ID to its function,
// assembled once at startup. Every random draw made by any policy goes
// through the injected generator, so a seeded generator pins outcomes.
type Dispatcher struct {
	table map[ID]Func
	rng   *rand.Rand
}

func NewDispatcher(rng *rand.Rand, params Params) *Dispatcher {
	h := &heuristics{rng: rng}
	minimax := searcher.NewMinimax(rng, searcher.WithDepth(params.MinimaxDepth))
	mcts := searcher.NewMCTS(rng,
		searcher.WithIterations(params.MCTSIterations),
		searcher.WithRolloutCap(params.RolloutCap))

	return &Dispatcher{
		rng: rng,
		table: map[ID]Func{
			Random:      h.random,
			Greedy:      h.greedy,
			SuperGreedy: h.superGreedy,
			Defensive:   h.defensive,
			Adaptive:    h.adaptive,
			Positional:  h.positional,
			Minimax:     minimax.FindMove,
			MCTS:        mcts.FindMove,
		},
	}
}

// GetMove invokes the policy against the board and re-verifies the mandatory
// capture rule at the boundary: if the returned move is not a capture while a
// legal capture exists, it is discarded for a uniformly random legal capture.
// Returns nil only when the side has no legal moves.
func (d *Dispatcher) GetMove(id ID, b *game.Board, team game.Team) *game.Move {
	fn, ok := d.table[id]
	if !ok {
		return nil
	}
	mv := fn(b, team)
	if mv == nil {
		return nil
	}
	moves := game.MovesForTeam(b, team)
	if len(moves) > 0 && moves[0].IsCapture(b) && !mv.IsCapture(b) {
		pick := moves[d.rng.Intn(len(moves))]
		return &pick
	}
	return mv
}
