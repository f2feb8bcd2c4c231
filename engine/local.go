package engine

import (
	"time"

	"draughts/game"
	"draughts/policy"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Player binds a display name to a move-selection policy.
type Player struct {
	Name   string
	Policy policy.ID
}

// Local runs one game between two dispatcher policies. It owns the
// authoritative GameState: the policies only ever see cloned boards through
// the core's pure functions, and the engine applies the returned moves,
// follows chain captures, flips the turn, and detects the end of the game.
type Local struct {
	State      game.GameState
	dispatcher *policy.Dispatcher
	players    [2]Player
	maxMoves   int
	rng        *rand.Rand
}

type LocalOption func(*Local)

func WithMaxMoves(n int) LocalOption {
	return func(e *Local) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

func NewLocal(dispatcher *policy.Dispatcher, rng *rand.Rand, player1, player2 Player, options ...LocalOption) *Local {
	e := &Local{
		State:      game.NewGameState(),
		dispatcher: dispatcher,
		players:    [2]Player{player1, player2},
		maxMoves:   MaxMoves,
		rng:        rng,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Local) player(team game.Team) Player {
	return e.players[int(team)-1]
}

// Run executes the game loop until a winner, a threefold repetition, or the
// move cap.
func (e *Local) Run() Outcome {
	start := time.Now()
	moves := 0
	seen := map[game.StateHash]int{}

	log.Debug().
		Str("player1", e.players[0].Name).
		Str("player2", e.players[1].Name).
		Msg("game starting")

	for moves < e.maxMoves {
		if over, winner := e.State.Over(); over {
			return e.finish(winner, moves, start)
		}

		mover := e.State.Turn
		mv := e.nextMove()
		if mv == nil { // No legal move: loss for the side to move
			return e.finish(mover.Opponent(), moves, start)
		}

		next, err := e.State.Play(*mv)
		if err != nil {
			log.Error().Err(err).
				Str("player", e.player(mover).Name).
				Msg("policy produced an illegal move, forfeiting")
			return e.finish(mover.Opponent(), moves, start)
		}
		e.State = next
		moves++

		hash := e.State.Hash()
		seen[hash]++
		if seen[hash] >= 3 {
			log.Debug().Int("moves", moves).Msg("threefold repetition, game drawn")
			return e.finish(0, moves, start)
		}
	}

	log.Debug().Int("moves", moves).Msg("move cap reached, game drawn")
	return e.finish(0, moves, start)
}

// nextMove asks the dispatcher for a move at the start of a turn. Mid-chain
// the same piece must keep capturing, so the engine restricts the choice to
// its jump continuations and follows the deepest chain.
func (e *Local) nextMove() *game.Move {
	if e.State.ChainPiece != 0 {
		return e.chainContinuation()
	}
	return e.dispatcher.GetMove(e.player(e.State.Turn).Policy, &e.State.Board, e.State.Turn)
}

func (e *Local) chainContinuation() *game.Move {
	continuations := e.State.LegalMoves()
	if len(continuations) == 0 {
		return nil
	}
	best := []game.Move{continuations[0]}
	bestDepth := game.ChainCaptureDepth(&e.State.Board, continuations[0].PieceID, continuations[0].To, 0)
	for _, mv := range continuations[1:] {
		depth := game.ChainCaptureDepth(&e.State.Board, mv.PieceID, mv.To, 0)
		if depth > bestDepth {
			best = []game.Move{mv}
			bestDepth = depth
		} else if depth == bestDepth {
			best = append(best, mv)
		}
	}
	pick := best[e.rng.Intn(len(best))]
	return &pick
}

func (e *Local) finish(winner game.Team, moves int, start time.Time) Outcome {
	outcome := Outcome{
		Winner:   winner,
		Moves:    moves,
		Duration: time.Since(start),
	}
	event := log.Debug().Int("moves", moves)
	if winner == 0 {
		event.Msg("game drawn")
	} else {
		event.Str("winner", e.player(winner).Name).Msg("game over")
	}
	return outcome
}
