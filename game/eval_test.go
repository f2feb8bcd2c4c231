package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mirror reflects a board across the horizontal center line and swaps the
// teams, producing the same position from the other side's point of view.
func mirror(b Board) Board {
	m := b.Clone()
	for i, p := range m.Pieces {
		m.Pieces[i] = Piece{
			ID:   p.ID,
			X:    p.X,
			Y:    7 - p.Y,
			Team: p.Team.Opponent(),
			King: p.King,
		}
	}
	return m
}

func TestEvaluateSymmetry(t *testing.T) {
	b := boardWith(
		Piece{ID: 1, X: 1, Y: 2, Team: Team1},
		Piece{ID: 2, X: 3, Y: 0, Team: Team1},
		Piece{ID: 3, X: 4, Y: 4, Team: Team1, King: true},
		Piece{ID: 4, X: 6, Y: 5, Team: Team2},
		Piece{ID: 5, X: 4, Y: 7, Team: Team2},
		Piece{ID: 6, X: 3, Y: 3, Team: Team2, King: true},
	)

	score := Evaluate(&b, 0)
	mirrored := mirror(b)
	require.InDelta(t, -score, Evaluate(&mirrored, 0), 1e-9,
		"A mirrored board with teams swapped must evaluate to the exact negation")
}

func TestEvaluateTerminal(t *testing.T) {
	t.Run("team with zero pieces has lost", func(t *testing.T) {
		b := boardWith(Piece{ID: 1, X: 2, Y: 2, Team: Team1})

		over, winner := Winner(&b)
		require.True(t, over)
		require.Equal(t, Team1, winner)
		require.Equal(t, float64(WinScore), Evaluate(&b, 0),
			"Evaluator and Winner must agree on terminal detection")
	})

	t.Run("team with zero legal moves has lost", func(t *testing.T) {
		// The Team2 man in the corner is boxed in: its step square is
		// occupied and its jump landing square is occupied too.
		b := boardWith(
			Piece{ID: 1, X: 7, Y: 7, Team: Team2},
			Piece{ID: 2, X: 6, Y: 6, Team: Team1},
			Piece{ID: 3, X: 5, Y: 5, Team: Team1},
		)
		require.Empty(t, MovesForTeam(&b, Team2))

		over, winner := Winner(&b)
		require.True(t, over)
		require.Equal(t, Team1, winner)
		require.Equal(t, float64(WinScore), Evaluate(&b, 0),
			"Both detection paths must report the same game over")
	})

	t.Run("depth hint shrinks the terminal magnitude", func(t *testing.T) {
		b := boardWith(Piece{ID: 1, X: 2, Y: 2, Team: Team1})
		require.Equal(t, float64(WinScore-3), Evaluate(&b, 3))
	})
}

func TestEvaluateMaterial(t *testing.T) {
	b := boardWith(
		Piece{ID: 1, X: 2, Y: 2, Team: Team1},
		Piece{ID: 2, X: 5, Y: 3, Team: Team1},
		Piece{ID: 3, X: 2, Y: 4, Team: Team2},
	)
	require.Greater(t, Evaluate(&b, 0), 0.0, "Material advantage for Team1 should score positive")

	require.Equal(t, 20, b.Material(Team1))
	require.Equal(t, 10, b.Material(Team2))
}

func TestSquareSafe(t *testing.T) {
	t.Run("capturable square is unsafe", func(t *testing.T) {
		b := boardWith(
			Piece{ID: 1, X: 3, Y: 3, Team: Team1},
			Piece{ID: 2, X: 4, Y: 4, Team: Team2},
		)
		require.False(t, SquareSafe(&b, 3, 3, Team1),
			"Opponent can jump from (4,4) over (3,3) to the empty (2,2)")
	})

	t.Run("blocked landing square makes it safe", func(t *testing.T) {
		b := boardWith(
			Piece{ID: 1, X: 3, Y: 3, Team: Team1},
			Piece{ID: 2, X: 4, Y: 4, Team: Team2},
			Piece{ID: 3, X: 2, Y: 2, Team: Team1},
		)
		require.True(t, SquareSafe(&b, 3, 3, Team1))
	})

	t.Run("edge squares cannot be jumped", func(t *testing.T) {
		b := boardWith(
			Piece{ID: 1, X: 0, Y: 3, Team: Team1},
			Piece{ID: 2, X: 1, Y: 4, Team: Team2},
		)
		require.True(t, SquareSafe(&b, 0, 3, Team1),
			"A jump over the edge square would land off-board")
	})
}
