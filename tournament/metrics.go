package tournament

import (
	"time"

	"github.com/google/uuid"
)

// GameRecord is one finished game as an opaque result tuple.
type GameRecord struct {
	ID       uuid.UUID
	Stage    string // "league" or a bracket round like "round-of-4"
	Player1  string // First mover (Team1)
	Player2  string
	Winner   string // Player name, or "draw"
	Moves    int
	Duration time.Duration
}

// Standing is one row of a round-robin table. Points follow the 1/0.5/0
// convention.
type Standing struct {
	Player string
	Points float64
	Wins   int
	Draws  int
	Losses int
	Games  int
}
