package game

import (
	"encoding/binary"
	"hash/fnv"
)

type StateHash uint64

// GameState is the authoritative game value the orchestrator threads through
// every call: the current board, the side to move, and the piece that must
// continue capturing mid-chain (0 when no chain is in progress). The core
// holds no mutable process-wide state; all transitions return a new value.
type GameState struct {
	Board      Board
	Turn       Team
	ChainPiece int
}

func NewGameState() GameState {
	return GameState{Board: NewBoard(), Turn: Team1}
}

// LegalMoves returns the moves available to the side to move. Mid-chain the
// side is restricted to jump-distance continuations with the chaining piece.
func (gs GameState) LegalMoves() []Move {
	if gs.ChainPiece != 0 {
		return JumpContinuations(&gs.Board, gs.ChainPiece)
	}
	return MovesForTeam(&gs.Board, gs.Turn)
}

// Play applies a move and returns the successor state. After a capture that
// leaves the same piece with a further jump available, the turn does not
// pass: the successor records the piece as the mandatory chain continuer.
// Promotion happens on landing, before chain continuation is evaluated.
func (gs GameState) Play(m Move) (GameState, error) {
	next, captured, err := ApplyMove(&gs.Board, m.PieceID, m.To)
	if err != nil {
		return gs, err
	}
	ns := GameState{Board: next, Turn: gs.Turn}
	if captured && len(JumpContinuations(&next, m.PieceID)) > 0 {
		ns.ChainPiece = m.PieceID
	} else {
		ns.Turn = gs.Turn.Opponent()
	}
	return ns, nil
}

// Over reports whether the game has ended and the winning team.
func (gs GameState) Over() (bool, Team) {
	return Winner(&gs.Board)
}

// Hash produces a position hash over square occupancy, side to move, and any
// chain obligation. States reached through different move orders hash equal
// when the resulting positions are identical.
func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()
	var occupancy [64]byte
	for _, p := range gs.Board.Pieces {
		code := byte(p.Team)
		if p.King {
			code += 2
		}
		occupancy[p.Y*8+p.X] = code
	}
	hasher.Write(occupancy[:])
	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))
	binary.Write(hasher, binary.LittleEndian, int64(gs.ChainPiece))
	return StateHash(hasher.Sum64())
}
