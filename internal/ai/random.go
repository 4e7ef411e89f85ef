package ai

import (
	"math/rand"

	"github.com/vovakirdan/tui-quarto/internal/core"
)

// Random plays uniformly random legal moves. It is a baseline for
// benchmarks and is not safe for concurrent use.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random player with its own seeded source.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Name returns the display name.
func (r *Random) Name() string { return "Random" }

// ChoosePiece picks any remaining piece.
func (r *Random) ChoosePiece(g *core.Game) (core.Piece, bool) {
	if g.Phase() != core.PhaseGive {
		return 0, false
	}
	rem := g.Remaining()
	return rem[r.rng.Intn(len(rem))], true
}

// ChoosePosition picks any free cell.
func (r *Random) ChoosePosition(g *core.Game) (core.Position, bool) {
	if g.Phase() != core.PhasePlace {
		return core.Position{}, false
	}
	free := g.FreePositions()
	return free[r.rng.Intn(len(free))], true
}
