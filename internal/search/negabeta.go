package search

import (
	"math"

	"github.com/vovakirdan/tui-quarto/internal/core"
)

// NegaBeta is negamax with alpha-beta pruning in fail-soft form: a node
// returns the best value it saw, which may lie outside its window.
type NegaBeta struct{}

func (NegaBeta) Name() string  { return "negabeta" }
func (NegaBeta) Title() string { return "Nega-Beta" }

// Build searches down to depth, pruning siblings once alpha >= beta.
func (nb NegaBeta) Build(g *core.Game, role Role, depth int) *Tree {
	b := newBuilder(nb.Name(), true, g, role)
	b.negaBeta(b.tree.Root(), depth, math.Inf(-1), math.Inf(1))
	return b.tree
}

func (b *builder) negaBeta(id NodeID, depth int, alpha, beta float64) float64 {
	n := b.tree.nodes[id]
	ms := moves(n.State)
	if cutoff(n.State, depth) || len(ms) == 0 {
		v := b.evaluate(id)
		b.tree.nodes[id].Value = v
		return v
	}

	best := math.Inf(-1)
	for i, mv := range ms {
		child := b.expand(id, mv)
		role := b.tree.nodes[child].Role
		ca, cb := childWindow(n.Role, role, alpha, beta)
		v := fromChild(n.Role, role, b.negaBeta(child, depth-1, ca, cb))
		if v > best {
			best = v
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			if i < len(ms)-1 {
				b.recordCutoff()
			}
			break
		}
	}

	b.tree.nodes[id].Value = best
	return best
}
