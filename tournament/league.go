package tournament

import (
	"sort"

	"draughts/engine"
	"draughts/policy"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// League runs a round-robin: every pair of entrants plays a fixed number of
// games with colors alternating, scored 1/0.5/0. One game runs at a time;
// nothing is shared across games except the dispatcher and its generator.
type League struct {
	dispatcher   *policy.Dispatcher
	rng          *rand.Rand
	players      []engine.Player
	gamesPerPair int
	maxMoves     int
	records      []GameRecord
}

func NewLeague(dispatcher *policy.Dispatcher, rng *rand.Rand, players []engine.Player, gamesPerPair, maxMoves int) *League {
	return &League{
		dispatcher:   dispatcher,
		rng:          rng,
		players:      players,
		gamesPerPair: gamesPerPair,
		maxMoves:     maxMoves,
	}
}

// Run plays out the league and returns the sorted standings.
func (l *League) Run() []Standing {
	points := make(map[string]*Standing, len(l.players))
	for _, p := range l.players {
		points[p.Name] = &Standing{Player: p.Name}
	}

	log.Info().Int("players", len(l.players)).Msg("starting round-robin league")

	for i := 0; i < len(l.players); i++ {
		for j := i + 1; j < len(l.players); j++ {
			for g := 0; g < l.gamesPerPair; g++ {
				first, second := l.players[i], l.players[j]
				if g%2 == 1 { // Alternate who moves first
					first, second = second, first
				}
				outcome := l.playGame("league", first, second)
				l.score(points, first, second, outcome)
			}
			log.Info().
				Str("player1", l.players[i].Name).
				Str("player2", l.players[j].Name).
				Msg("completed pairing")
		}
	}

	standings := make([]Standing, 0, len(points))
	for _, s := range points {
		standings = append(standings, *s)
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Points != standings[j].Points {
			return standings[i].Points > standings[j].Points
		}
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return standings[i].Player < standings[j].Player
	})

	log.Info().Str("leader", standings[0].Player).Msg("league complete")
	return standings
}

// Records returns every game played, in order.
func (l *League) Records() []GameRecord {
	return l.records
}

func (l *League) playGame(stage string, first, second engine.Player) engine.Outcome {
	e := engine.NewLocal(l.dispatcher, l.rng, first, second, engine.WithMaxMoves(l.maxMoves))
	outcome := e.Run()

	winner := "draw"
	if !outcome.Draw() {
		winner = first.Name
		if outcome.Winner == 2 {
			winner = second.Name
		}
	}
	l.records = append(l.records, GameRecord{
		ID:       uuid.New(),
		Stage:    stage,
		Player1:  first.Name,
		Player2:  second.Name,
		Winner:   winner,
		Moves:    outcome.Moves,
		Duration: outcome.Duration,
	})
	return outcome
}

func (l *League) score(points map[string]*Standing, first, second engine.Player, outcome engine.Outcome) {
	a, b := points[first.Name], points[second.Name]
	a.Games++
	b.Games++
	switch outcome.Winner {
	case 1:
		a.Points++
		a.Wins++
		b.Losses++
	case 2:
		b.Points++
		b.Wins++
		a.Losses++
	default:
		a.Points += 0.5
		b.Points += 0.5
		a.Draws++
		b.Draws++
	}
}
