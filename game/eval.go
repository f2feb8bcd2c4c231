package game

import "math"

// WinScore is the terminal evaluation magnitude. Search subtracts a depth hint
// so that quicker forced wins score higher than slower ones.
const WinScore = 10000

// Winner reports whether the game is over on this board and who won. A team
// with zero pieces or zero legal moves has lost. This must always agree with
// the terminal detection inside Evaluate.
func Winner(b *Board) (bool, Team) {
	if b.CountPieces(Team1) == 0 || len(MovesForTeam(b, Team1)) == 0 {
		return true, Team2
	}
	if b.CountPieces(Team2) == 0 || len(MovesForTeam(b, Team2)) == 0 {
		return true, Team1
	}
	return false, 0
}

// Evaluate statically scores the board; positive favors Team1, negative
// favors Team2. depthHint reduces the terminal magnitude to prefer faster
// wins and slower losses inside search; pass 0 outside search.
func Evaluate(b *Board, depthHint int) float64 {
	moves1 := MovesForTeam(b, Team1)
	moves2 := MovesForTeam(b, Team2)
	if b.CountPieces(Team1) == 0 || len(moves1) == 0 {
		return -float64(WinScore - depthHint)
	}
	if b.CountPieces(Team2) == 0 || len(moves2) == 0 {
		return float64(WinScore - depthHint)
	}

	score := 0.0
	for _, p := range b.Pieces {
		v := 10.0
		if p.King {
			v = 25.0
		} else {
			adv := Advancement(p)
			v += 0.5 * float64(adv)
			if adv == 6 { // One row from promotion
				v += 5.0
			}
		}
		v += CenterBonus(p.X, p.Y)
		if !SquareSafe(b, p.X, p.Y, p.Team) {
			if p.King {
				v -= 15.0
			} else {
				v -= 10.0
			}
		}
		if p.Team == Team1 {
			score += v
		} else {
			score -= v
		}
	}

	// Mobility differential
	score += float64(len(moves1)-len(moves2)) * 0.2

	// Back-rank integrity: a thinned home row invites unopposed promotion
	if b.CountOnRank(Team1, BackRank(Team1)) < 2 {
		score -= 3.0
	}
	if b.CountOnRank(Team2, BackRank(Team2)) < 2 {
		score += 3.0
	}
	return score
}

// CenterBonus rewards proximity to the board center.
func CenterBonus(x, y int) float64 {
	return (4 - math.Abs(3.5-float64(x)) - math.Abs(3.5-float64(y))) * 0.3
}

// SquareSafe reports whether a piece of the given team sitting at (x,y) could
// be captured next turn: it checks raw 2-square jump geometry over (x,y) for
// every diagonal, regardless of which piece actually occupies the square.
func SquareSafe(b *Board, x, y int, team Team) bool {
	for _, d := range [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
		ax, ay := x+d[0], y+d[1] // Attacker square
		lx, ly := x-d[0], y-d[1] // Landing square
		if !onBoard(ax, ay) || !onBoard(lx, ly) {
			continue
		}
		attacker, ok := b.PieceAt(ax, ay)
		if !ok || attacker.Team == team {
			continue
		}
		if _, occupied := b.PieceAt(lx, ly); !occupied {
			return false
		}
	}
	return true
}
