package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func boardWith(pieces ...Piece) Board {
	b := Board{Pieces: make([]Piece, len(pieces))}
	copy(b.Pieces, pieces)
	return b
}

func TestOpeningMoves(t *testing.T) {
	b := NewBoard()

	require.Len(t, b.Pieces, 24, "Standard setup should have 24 pieces")
	require.Equal(t, 12, b.CountPieces(Team1), "Team1 should have 12 pieces")
	require.Equal(t, 12, b.CountPieces(Team2), "Team2 should have 12 pieces")

	moves := MovesForTeam(&b, Team1)
	require.Len(t, moves, 7, "The standard opening has exactly 7 legal moves")
	for _, mv := range moves {
		require.False(t, mv.IsCapture(&b), "No captures exist in the opening")
		require.Equal(t, 3, mv.To.Y, "All opening moves advance to row 3")
	}
}

func TestMandatoryCaptureFilter(t *testing.T) {
	b := boardWith(
		Piece{ID: 1, X: 2, Y: 2, Team: Team1},
		Piece{ID: 2, X: 6, Y: 2, Team: Team1},
		Piece{ID: 3, X: 3, Y: 3, Team: Team2},
		Piece{ID: 4, X: 0, Y: 6, Team: Team2},
	)

	moves := MovesForTeam(&b, Team1)
	require.NotEmpty(t, moves, "Team1 should have moves")
	for _, mv := range moves {
		require.True(t, mv.IsCapture(&b), "When any capture exists, every returned move must be a capture")
	}
	require.Equal(t, 1, moves[0].PieceID, "Only the piece with the capture may move")
}

func TestApplyMoveClonePurity(t *testing.T) {
	b := boardWith(
		Piece{ID: 1, X: 2, Y: 2, Team: Team1},
		Piece{ID: 2, X: 3, Y: 3, Team: Team2},
	)
	snapshot := b.Clone()

	next, captured, err := ApplyMove(&b, 1, Square{4, 4})
	require.NoError(t, err)
	require.True(t, captured, "Jump over an opposing piece should capture")
	require.Equal(t, snapshot, b, "Input board must be left field-for-field unchanged")

	moved, ok := next.PieceByID(1)
	require.True(t, ok)
	require.Equal(t, Square{4, 4}, Square{moved.X, moved.Y}, "Piece should relocate to the destination")
	_, stillThere := next.PieceByID(2)
	require.False(t, stillThere, "Captured piece must be removed, never marked dead")
}

func TestChainCaptureContinuation(t *testing.T) {
	b := boardWith(
		Piece{ID: 1, X: 2, Y: 2, Team: Team1},
		Piece{ID: 2, X: 3, Y: 3, Team: Team2},
		Piece{ID: 3, X: 5, Y: 5, Team: Team2},
	)

	next, captured, err := ApplyMove(&b, 1, Square{4, 4})
	require.NoError(t, err)
	require.True(t, captured)

	continuations := JumpContinuations(&next, 1)
	require.Len(t, continuations, 1, "A further jump must be found from the new square")
	require.Equal(t, Square{6, 6}, continuations[0].To)

	require.Equal(t, 2, ChainCaptureDepth(&b, 1, Square{4, 4}, 0),
		"Chain depth should count both captures in the sequence")
}

func TestChainCaptureDepthNonCapture(t *testing.T) {
	b := boardWith(Piece{ID: 1, X: 2, Y: 2, Team: Team1})
	require.Equal(t, 0, ChainCaptureDepth(&b, 1, Square{3, 3}, 0),
		"A non-capturing move leaves depth unchanged")
}

func TestKingPromotion(t *testing.T) {
	t.Run("team 1 man promotes on row 7", func(t *testing.T) {
		b := boardWith(
			Piece{ID: 1, X: 2, Y: 6, Team: Team1},
			Piece{ID: 2, X: 0, Y: 0, Team: Team2},
		)
		next, _, err := ApplyMove(&b, 1, Square{3, 7})
		require.NoError(t, err)
		p, _ := next.PieceByID(1)
		require.True(t, p.King, "Promotion happens immediately upon landing")
	})

	t.Run("team 2 man promotes on row 0", func(t *testing.T) {
		b := boardWith(
			Piece{ID: 1, X: 2, Y: 1, Team: Team2},
			Piece{ID: 2, X: 7, Y: 7, Team: Team1},
		)
		next, _, err := ApplyMove(&b, 1, Square{1, 0})
		require.NoError(t, err)
		p, _ := next.PieceByID(1)
		require.True(t, p.King)
	})

	t.Run("promotion holds mid-chain", func(t *testing.T) {
		b := boardWith(
			Piece{ID: 1, X: 2, Y: 5, Team: Team1},
			Piece{ID: 2, X: 3, Y: 6, Team: Team2},
			Piece{ID: 3, X: 5, Y: 6, Team: Team2},
		)
		next, captured, err := ApplyMove(&b, 1, Square{4, 7})
		require.NoError(t, err)
		require.True(t, captured)
		p, _ := next.PieceByID(1)
		require.True(t, p.King, "Kinging happens before further chain-capture evaluation")
	})
}

func TestValidityPredicate(t *testing.T) {
	t.Run("non-king may not move more than 2 squares", func(t *testing.T) {
		b := boardWith(Piece{ID: 1, X: 1, Y: 1, Team: Team1})
		_, _, err := ApplyMove(&b, 1, Square{4, 4})
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("non-king 2-square jump requires an opposing midpoint", func(t *testing.T) {
		b := boardWith(Piece{ID: 1, X: 2, Y: 2, Team: Team1})
		_, _, err := ApplyMove(&b, 1, Square{4, 4})
		require.ErrorIs(t, err, ErrIllegalMove, "Jump over an empty square is not a move for a man")
	})

	t.Run("jump over a friendly piece is illegal", func(t *testing.T) {
		b := boardWith(
			Piece{ID: 1, X: 2, Y: 2, Team: Team1},
			Piece{ID: 2, X: 3, Y: 3, Team: Team1},
		)
		_, _, err := ApplyMove(&b, 1, Square{4, 4})
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("occupied destination is illegal", func(t *testing.T) {
		b := boardWith(
			Piece{ID: 1, X: 2, Y: 2, Team: Team1},
			Piece{ID: 2, X: 3, Y: 3, Team: Team2},
		)
		_, _, err := ApplyMove(&b, 1, Square{3, 3})
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("missing piece is rejected", func(t *testing.T) {
		b := boardWith(Piece{ID: 1, X: 2, Y: 2, Team: Team1})
		_, _, err := ApplyMove(&b, 99, Square{3, 3})
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("king may slide 2 squares without capturing", func(t *testing.T) {
		b := boardWith(Piece{ID: 1, X: 2, Y: 2, Team: Team1, King: true})
		_, captured, err := ApplyMove(&b, 1, Square{4, 4})
		require.NoError(t, err, "King 2-square move does not require a midpoint piece")
		require.False(t, captured)
	})

	t.Run("king long move over a single opposing piece captures it", func(t *testing.T) {
		b := boardWith(
			Piece{ID: 1, X: 0, Y: 0, Team: Team1, King: true},
			Piece{ID: 2, X: 3, Y: 3, Team: Team2},
		)
		next, captured, err := ApplyMove(&b, 1, Square{5, 5})
		require.NoError(t, err)
		require.True(t, captured)
		_, stillThere := next.PieceByID(2)
		require.False(t, stillThere)
	})
}

func TestMovesForPieceKing(t *testing.T) {
	b := boardWith(Piece{ID: 1, X: 3, Y: 3, Team: Team1, King: true})
	dests := MovesForPiece(&b, b.Pieces[0])
	require.Len(t, dests, 13, "A lone centered king reaches every square on both open diagonals")
}

func TestCaptureDetect(t *testing.T) {
	b := boardWith(
		Piece{ID: 1, X: 2, Y: 2, Team: Team1},
		Piece{ID: 2, X: 3, Y: 3, Team: Team2},
	)

	victim, ok := CaptureDetect(&b, b.Pieces[0], Square{4, 4})
	require.True(t, ok)
	require.Equal(t, 2, victim.ID)

	_, ok = CaptureDetect(&b, b.Pieces[0], Square{1, 3})
	require.False(t, ok, "1-square moves never capture")
}
