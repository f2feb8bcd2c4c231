package game

// Team identifies one of the two sides. Team1 starts on rows 0-2 and promotes
// on row 7; Team2 starts on rows 5-7 and promotes on row 0.
type Team int

const (
	Team1 Team = 1
	Team2 Team = 2
)

func (t Team) Opponent() Team {
	if t == Team1 {
		return Team2
	}
	return Team1
}

func (t Team) String() string {
	if t == Team1 {
		return "Team1"
	}
	return "Team2"
}

// Piece is a single checker. ID is unique and stable for the piece's lifetime;
// captured pieces are removed from the board, never marked dead. King never
// reverts to false once set.
type Piece struct {
	ID   int
	X, Y int
	Team Team
	King bool
}

// Square is a board coordinate, x and y in [0,7].
type Square struct {
	X, Y int
}

// Board is an ordered collection of pieces, no two sharing a square or an ID.
// Boards are values: search and heuristic code always clones before simulating
// a move and must never mutate a board another code path can observe.
type Board struct {
	Pieces []Piece
}

// NewBoard sets up the standard 3-row formation: 12 pieces per team on the
// dark squares ((x+y) odd), Team1 on rows 0-2, Team2 on rows 5-7.
func NewBoard() Board {
	b := Board{Pieces: make([]Piece, 0, 24)}
	id := 1
	for _, rows := range [][]int{{0, 1, 2}, {5, 6, 7}} {
		team := Team1
		if rows[0] == 5 {
			team = Team2
		}
		for _, y := range rows {
			for x := 0; x < 8; x++ {
				if (x+y)%2 != 1 {
					continue
				}
				b.Pieces = append(b.Pieces, Piece{ID: id, X: x, Y: y, Team: team})
				id++
			}
		}
	}
	return b
}

// Clone returns a deep value copy of the board.
func (b Board) Clone() Board {
	pieces := make([]Piece, len(b.Pieces))
	copy(pieces, b.Pieces)
	return Board{Pieces: pieces}
}

// PieceAt returns the piece occupying (x,y), if any.
func (b *Board) PieceAt(x, y int) (Piece, bool) {
	for _, p := range b.Pieces {
		if p.X == x && p.Y == y {
			return p, true
		}
	}
	return Piece{}, false
}

// PieceByID returns the piece with the given ID, if it is still on the board.
func (b *Board) PieceByID(id int) (Piece, bool) {
	if i := b.indexByID(id); i >= 0 {
		return b.Pieces[i], true
	}
	return Piece{}, false
}

func (b *Board) indexByID(id int) int {
	for i, p := range b.Pieces {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (b *Board) removeByID(id int) {
	if i := b.indexByID(id); i >= 0 {
		b.Pieces = append(b.Pieces[:i], b.Pieces[i+1:]...)
	}
}

// CountPieces returns the number of pieces the team has left.
func (b *Board) CountPieces(team Team) int {
	n := 0
	for _, p := range b.Pieces {
		if p.Team == team {
			n++
		}
	}
	return n
}

// Material tallies a team's material as 25 per king and 10 per man.
func (b *Board) Material(team Team) int {
	total := 0
	for _, p := range b.Pieces {
		if p.Team != team {
			continue
		}
		if p.King {
			total += 25
		} else {
			total += 10
		}
	}
	return total
}

func onBoard(x, y int) bool {
	return x >= 0 && x < 8 && y >= 0 && y < 8
}

// BackRank is the row a team's pieces start on and defend.
func BackRank(team Team) int {
	if team == Team1 {
		return 0
	}
	return 7
}

// promotionRank is the far row where a team's men become kings.
func promotionRank(team Team) int {
	if team == Team1 {
		return 7
	}
	return 0
}

// Advancement is the number of rows a piece has progressed toward promotion.
func Advancement(p Piece) int {
	if p.Team == Team1 {
		return p.Y
	}
	return 7 - p.Y
}

// CountOnRank returns how many of the team's pieces sit on the given row.
func (b *Board) CountOnRank(team Team, rank int) int {
	n := 0
	for _, p := range b.Pieces {
		if p.Team == team && p.Y == rank {
			n++
		}
	}
	return n
}
