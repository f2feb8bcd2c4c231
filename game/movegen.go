package game

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned by ApplyMove when the requested piece/destination
// pair fails the validity predicate. Callers are expected to only ever pass
// pre-validated moves; this is a safety net, not a recoverable path.
var ErrIllegalMove = errors.New("illegal move requested")

// stepOffsets are the 8 one/two-square diagonal candidates for a non-king.
var stepOffsets = [8][2]int{
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	{2, 2}, {2, -2}, {-2, 2}, {-2, -2},
}

// validDestination is the move validity predicate: on-board, diagonal,
// distance at most 2 unless king, destination empty, and a 2-square jump may
// not pass over a friendly piece. A non-king 2-square jump additionally
// requires an opposing piece at the midpoint; a king 2-square move does not,
// so a king may slide 2 squares onto an empty diagonal. For king moves beyond
// distance 2 the predicate checks only that the destination is empty and
// diagonal, with no constraint on what the move passes over.
func validDestination(b *Board, p Piece, to Square) bool {
	if !onBoard(to.X, to.Y) {
		return false
	}
	dx, dy := to.X-p.X, to.Y-p.Y
	if dx == 0 || abs(dx) != abs(dy) {
		return false
	}
	dist := abs(dx)
	if dist > 2 && !p.King {
		return false
	}
	if _, occupied := b.PieceAt(to.X, to.Y); occupied {
		return false
	}
	if dist == 2 {
		mid, occupied := b.PieceAt(p.X+dx/2, p.Y+dy/2)
		if occupied && mid.Team == p.Team {
			return false
		}
		if !p.King && !occupied {
			return false
		}
	}
	return true
}

// MovesForPiece enumerates the destinations the piece can legally reach.
// Mandatory-capture filtering is not applied here; that happens at the team
// aggregation level in MovesForTeam.
func MovesForPiece(b *Board, p Piece) []Square {
	var dests []Square
	if p.King {
		for i := -7; i <= 7; i++ {
			if i == 0 {
				continue
			}
			for _, to := range [2]Square{{p.X + i, p.Y + i}, {p.X + i, p.Y - i}} {
				if validDestination(b, p, to) {
					dests = append(dests, to)
				}
			}
		}
		return dests
	}
	for _, d := range stepOffsets {
		to := Square{p.X + d[0], p.Y + d[1]}
		if validDestination(b, p, to) {
			dests = append(dests, to)
		}
	}
	return dests
}

// MovesForTeam returns every legal move for the team, in piece iteration order
// then per-piece move order. If any capturing move exists, only capturing
// moves are returned (mandatory capture).
func MovesForTeam(b *Board, team Team) []Move {
	var all, captures []Move
	for _, p := range b.Pieces {
		if p.Team != team {
			continue
		}
		for _, to := range MovesForPiece(b, p) {
			m := Move{PieceID: p.ID, To: to}
			all = append(all, m)
			if _, captured := CaptureDetect(b, p, to); captured {
				captures = append(captures, m)
			}
		}
	}
	if len(captures) > 0 {
		return captures
	}
	return all
}

// CaptureDetect scans the squares strictly between the piece and the
// destination and returns the first opposing piece found. Moves of diagonal
// distance 1 never capture.
func CaptureDetect(b *Board, p Piece, to Square) (Piece, bool) {
	dx, dy := to.X-p.X, to.Y-p.Y
	if abs(dx) <= 1 || abs(dx) != abs(dy) {
		return Piece{}, false
	}
	sx, sy := sign(dx), sign(dy)
	for x, y := p.X+sx, p.Y+sy; x != to.X; x, y = x+sx, y+sy {
		if q, ok := b.PieceAt(x, y); ok && q.Team != p.Team {
			return q, true
		}
	}
	return Piece{}, false
}

// ApplyMove is the sole state-transition primitive. It clones the board,
// relocates the piece, removes the captured piece if the move jumps one, and
// promotes the piece to king when it lands on the far rank. The input board
// is never mutated. Returns ErrIllegalMove if the pair fails the validity
// predicate.
func ApplyMove(b *Board, pieceID int, to Square) (Board, bool, error) {
	i := b.indexByID(pieceID)
	if i < 0 {
		return Board{}, false, fmt.Errorf("%w: no piece with id %d", ErrIllegalMove, pieceID)
	}
	p := b.Pieces[i]
	if !validDestination(b, p, to) {
		return Board{}, false, fmt.Errorf("%w: piece %d (%d,%d) to (%d,%d)",
			ErrIllegalMove, p.ID, p.X, p.Y, to.X, to.Y)
	}

	next := b.Clone()
	victim, captured := CaptureDetect(b, p, to)
	if captured {
		next.removeByID(victim.ID)
	}
	j := next.indexByID(pieceID)
	next.Pieces[j].X = to.X
	next.Pieces[j].Y = to.Y
	if to.Y == promotionRank(p.Team) {
		next.Pieces[j].King = true
	}
	return next, captured, nil
}

// JumpContinuations returns the jump-distance capturing moves available to the
// piece from its current square, used to continue a chain capture.
func JumpContinuations(b *Board, pieceID int) []Move {
	p, ok := b.PieceByID(pieceID)
	if !ok {
		return nil
	}
	var jumps []Move
	for _, to := range MovesForPiece(b, p) {
		if distance(p, to) != 2 {
			continue
		}
		if _, captured := CaptureDetect(b, p, to); captured {
			jumps = append(jumps, Move{PieceID: p.ID, To: to})
		}
	}
	return jumps
}

// ChainCaptureDepth applies the move and, if it captured, recursively follows
// every jump-distance continuation from the piece's new square, returning the
// maximum number of captures in the chain. A non-capturing move returns depth
// unchanged.
func ChainCaptureDepth(b *Board, pieceID int, to Square, depth int) int {
	next, captured, err := ApplyMove(b, pieceID, to)
	if err != nil || !captured {
		return depth
	}
	best := depth + 1
	for _, m := range JumpContinuations(&next, pieceID) {
		if d := ChainCaptureDepth(&next, m.PieceID, m.To, depth+1); d > best {
			best = d
		}
	}
	return best
}
