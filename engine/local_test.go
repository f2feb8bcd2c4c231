package engine

import (
	"testing"

	"draughts/game"
	"draughts/policy"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(11))
}

func newTestEngine(t *testing.T, p1, p2 policy.ID, options ...LocalOption) *Local {
	t.Helper()
	rng := testRNG()
	d := policy.NewDispatcher(rng, policy.Params{MinimaxDepth: 2, MCTSIterations: 50, RolloutCap: 20})
	return NewLocal(d,
		rng,
		Player{Name: "one", Policy: p1},
		Player{Name: "two", Policy: p2},
		options...)
}

func TestLocalRunCompletes(t *testing.T) {
	e := newTestEngine(t, policy.Random, policy.Random)
	outcome := e.Run()

	require.LessOrEqual(t, outcome.Moves, MaxMoves)
	require.Positive(t, outcome.Moves, "A game from the opening must apply at least one move")
	require.Contains(t, []game.Team{0, game.Team1, game.Team2}, outcome.Winner)
	if outcome.Winner == 0 {
		require.True(t, outcome.Draw())
	}
}

func TestLocalGreedyBeatsNobodyByForfeit(t *testing.T) {
	// Greedy versus defensive from the opening must end through a real rules
	// path, never the illegal-move forfeit branch.
	e := newTestEngine(t, policy.Greedy, policy.Defensive)
	outcome := e.Run()
	require.LessOrEqual(t, outcome.Moves, MaxMoves)
}

func TestLocalMaxMovesDraw(t *testing.T) {
	e := newTestEngine(t, policy.Random, policy.Random, WithMaxMoves(4))
	outcome := e.Run()
	require.True(t, outcome.Draw(), "Hitting the move cap from the opening is a draw")
	require.Equal(t, 4, outcome.Moves)
}

func TestChainContinuationTakesDeepestJump(t *testing.T) {
	e := newTestEngine(t, policy.Random, policy.Random)
	// Mid-chain state: the Team1 man on (2,2) just captured and sits with two
	// continuations, one ending the chain and one capturing again afterwards.
	e.State = game.GameState{
		Board: game.Board{Pieces: []game.Piece{
			{ID: 1, X: 2, Y: 2, Team: game.Team1},
			{ID: 2, X: 3, Y: 3, Team: game.Team2},
			{ID: 3, X: 3, Y: 1, Team: game.Team2},
			{ID: 4, X: 5, Y: 5, Team: game.Team2},
		}},
		Turn:       game.Team1,
		ChainPiece: 1,
	}

	mv := e.nextMove()
	require.NotNil(t, mv)
	require.Equal(t, 1, mv.PieceID, "Mid-chain only the chaining piece may move")
	require.Equal(t, game.Square{X: 4, Y: 4}, mv.To,
		"The continuation leading to a second capture must win over the dead end")
}

func TestLocalNoMovesIsLoss(t *testing.T) {
	e := newTestEngine(t, policy.Random, policy.Random)
	// Team1 to move with a boxed-in man: Team2 wins immediately.
	e.State = game.GameState{
		Board: game.Board{Pieces: []game.Piece{
			{ID: 1, X: 7, Y: 7, Team: game.Team1},
			{ID: 2, X: 6, Y: 6, Team: game.Team2},
			{ID: 3, X: 5, Y: 5, Team: game.Team2},
		}},
		Turn: game.Team1,
	}

	outcome := e.Run()
	require.Equal(t, game.Team2, outcome.Winner)
	require.Zero(t, outcome.Moves)
}
