package search

import (
	"math"

	"github.com/vovakirdan/tui-quarto/internal/core"
)

// AlphaBeta is negamax with an (alpha, beta) window. It is fail-hard: a
// node never reports a value outside its window. Only explored children
// are recorded in the tree.
type AlphaBeta struct{}

func (AlphaBeta) Name() string  { return "alphabeta" }
func (AlphaBeta) Title() string { return "Alpha-Beta" }

// Build searches down to depth, pruning siblings once alpha >= beta.
func (a AlphaBeta) Build(g *core.Game, role Role, depth int) *Tree {
	b := newBuilder(a.Name(), true, g, role)
	b.alphaBeta(b.tree.Root(), depth, math.Inf(-1), math.Inf(1))
	return b.tree
}

func (b *builder) alphaBeta(id NodeID, depth int, alpha, beta float64) float64 {
	n := b.tree.nodes[id]
	ms := moves(n.State)
	if cutoff(n.State, depth) || len(ms) == 0 {
		v := b.evaluate(id)
		b.tree.nodes[id].Value = v
		return v
	}

	for i, mv := range ms {
		child := b.expand(id, mv)
		role := b.tree.nodes[child].Role
		ca, cb := childWindow(n.Role, role, alpha, beta)
		v := fromChild(n.Role, role, b.alphaBeta(child, depth-1, ca, cb))
		if v >= beta {
			alpha = beta
			if i < len(ms)-1 {
				b.recordCutoff()
			}
			break
		}
		if v > alpha {
			alpha = v
		}
	}

	b.tree.nodes[id].Value = alpha
	return alpha
}
