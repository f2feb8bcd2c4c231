package engine

import (
	"time"

	"draughts/game"
)

// MaxMoves is the default move cap after which a game is scored as a draw.
const MaxMoves = 400

// Outcome is how a finished game is reported back: the winning team (0 for a
// draw), the number of applied moves, and wall-clock duration.
type Outcome struct {
	Winner   game.Team
	Moves    int
	Duration time.Duration
}

func (o Outcome) Draw() bool {
	return o.Winner == 0
}

type Engine interface {
	// Run starts a game and plays until there is a winner, a repetition draw,
	// or the move cap is reached.
	Run() Outcome
}
