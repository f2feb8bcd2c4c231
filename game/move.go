package game

// Move is a candidate relocation of a piece to a destination square. The
// destination is reachable by a diagonal step (1 square), a jump (2 squares),
// or any diagonal distance for a king.
type Move struct {
	PieceID int
	To      Square
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// distance is the diagonal length of the move for the given origin.
func distance(from Piece, to Square) int {
	return abs(to.X - from.X)
}

// IsCapture reports whether playing the move on the board would remove an
// opposing piece.
func (m Move) IsCapture(b *Board) bool {
	p, ok := b.PieceByID(m.PieceID)
	if !ok {
		return false
	}
	_, captured := CaptureDetect(b, p, m.To)
	return captured
}
