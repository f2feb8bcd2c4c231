package policy

import (
	"sort"

	"draughts/game"

	"golang.org/x/exp/rand"
)

// Half-width of the symmetric noise added to every heuristic move score. The
// noise breaks exact ties and keeps repeated games between the same two
// deterministic policies from replaying identically.
const noiseSpread = 7.5

// heuristics holds the shared random source for the non-search policies.
type heuristics struct {
	rng *rand.Rand
}

func (h *heuristics) noise() float64 {
	return h.rng.Float64()*2*noiseSpread - noiseSpread
}

type scoredMove struct {
	move  game.Move
	score float64
}

// pickBanded sorts descending and samples uniformly among the moves whose
// score falls within the policy's tolerance band of the top score. The band
// is what gives each bot personality-consistent but non-deterministic play.
func (h *heuristics) pickBanded(scored []scoredMove, threshold func(max float64) float64) *game.Move {
	if len(scored) == 0 {
		return nil
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	limit := threshold(scored[0].score)
	n := 1
	for n < len(scored) && scored[n].score >= limit {
		n++
	}
	pick := scored[h.rng.Intn(n)]
	return &pick.move
}

// moveContext gathers the features the scoring formulas share for one
// candidate move.
type moveContext struct {
	mover      game.Piece
	after      game.Board
	afterPiece game.Piece
	captured   bool
	chainDepth int
	threatened bool // Mover's origin square is capturable before the move
	destSafe   bool // Destination square is safe after the move
	exposed    int  // Friendly pieces newly capturable after the move
}

func describeMove(b *game.Board, mv game.Move) (moveContext, bool) {
	mover, ok := b.PieceByID(mv.PieceID)
	if !ok {
		return moveContext{}, false
	}
	after, captured, err := game.ApplyMove(b, mv.PieceID, mv.To)
	if err != nil {
		return moveContext{}, false
	}
	afterPiece, _ := after.PieceByID(mv.PieceID)

	ctx := moveContext{
		mover:      mover,
		after:      after,
		afterPiece: afterPiece,
		captured:   captured,
		threatened: !game.SquareSafe(b, mover.X, mover.Y, mover.Team),
		destSafe:   game.SquareSafe(&after, mv.To.X, mv.To.Y, mover.Team),
	}
	if captured {
		ctx.chainDepth = game.ChainCaptureDepth(b, mv.PieceID, mv.To, 0)
	}
	ctx.exposed = newlyExposed(b, &after, mover.Team, mv.PieceID)
	return ctx, true
}

// newlyExposed counts friendly pieces (other than the mover) that were safe
// before the move and capturable after it.
func newlyExposed(before, after *game.Board, team game.Team, moverID int) int {
	n := 0
	for _, p := range after.Pieces {
		if p.Team != team || p.ID == moverID {
			continue
		}
		if game.SquareSafe(after, p.X, p.Y, team) {
			continue
		}
		if prev, ok := before.PieceByID(p.ID); ok && game.SquareSafe(before, prev.X, prev.Y, team) {
			n++
		}
	}
	return n
}

// cohesion counts friendly pieces on the four diagonal neighbors of (x,y).
func cohesion(b *game.Board, x, y int, team game.Team) int {
	n := 0
	for _, d := range [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
		if p, ok := b.PieceAt(x+d[0], y+d[1]); ok && p.Team == team {
			n++
		}
	}
	return n
}
