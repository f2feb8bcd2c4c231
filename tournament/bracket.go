package tournament

import (
	"fmt"

	"draughts/engine"
	"draughts/policy"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// suddenDeathCap bounds the tiebreak games per match; if every one of them is
// drawn the higher seed advances.
const suddenDeathCap = 5

// Bracket runs a seeded single-elimination tournament. Each round pairs the
// best remaining seed against the worst; a match is best-of-2 with colors
// swapped plus sudden-death tiebreak games.
type Bracket struct {
	league *League // Reuses the game-playing and record-keeping machinery
	seeds  []engine.Player
}

func NewBracket(dispatcher *policy.Dispatcher, rng *rand.Rand, seeds []engine.Player, maxMoves int) *Bracket {
	return &Bracket{
		league: NewLeague(dispatcher, rng, seeds, 0, maxMoves),
		seeds:  seeds,
	}
}

// Run plays the bracket to completion and returns the champion.
func (b *Bracket) Run() engine.Player {
	alive := make([]engine.Player, len(b.seeds))
	copy(alive, b.seeds)

	log.Info().Int("entrants", len(alive)).Msg("starting elimination bracket")

	for len(alive) > 1 {
		stage := fmt.Sprintf("round-of-%d", len(alive))
		var winners []engine.Player

		// Top seed plays bottom seed; an odd entrant count gives the middle
		// seed a bye.
		lo, hi := 0, len(alive)-1
		for lo < hi {
			winners = append(winners, b.match(stage, alive[lo], alive[hi]))
			lo++
			hi--
		}
		if lo == hi {
			winners = append(winners, alive[lo])
		}
		alive = winners
	}

	log.Info().Str("champion", alive[0].Name).Msg("bracket complete")
	return alive[0]
}

// Records returns every game played, in order.
func (b *Bracket) Records() []GameRecord {
	return b.league.Records()
}

// match plays best-of-2 with colors swapped. A split or all-drawn match goes
// to sudden death: alternating-color games until one is decisive, with the
// higher seed advancing if the cap runs out.
func (b *Bracket) match(stage string, high, low engine.Player) engine.Player {
	wins := map[string]int{}
	record := func(first, second engine.Player) {
		outcome := b.league.playGame(stage, first, second)
		if !outcome.Draw() {
			name := first.Name
			if outcome.Winner == 2 {
				name = second.Name
			}
			wins[name]++
		}
	}

	record(high, low)
	record(low, high)

	for extra := 0; wins[high.Name] == wins[low.Name] && extra < suddenDeathCap; extra++ {
		if extra%2 == 0 {
			record(high, low)
		} else {
			record(low, high)
		}
	}

	winner := high
	if wins[low.Name] > wins[high.Name] {
		winner = low
	}
	log.Info().
		Str("stage", stage).
		Str("winner", winner.Name).
		Str("opponent", otherName(winner, high, low)).
		Msg("match decided")
	return winner
}

func otherName(winner, a, b engine.Player) string {
	if winner.Name == a.Name {
		return b.Name
	}
	return a.Name
}
