package search

import (
	"math"

	"github.com/vovakirdan/tui-quarto/internal/core"
)

// Negamax expands the full tree. Every node stores its value from its own
// role's side and takes the best of its re-oriented children.
type Negamax struct{}

func (Negamax) Name() string  { return "negamax" }
func (Negamax) Title() string { return "Negamax" }

// Build expands every sub-move down to depth.
func (n Negamax) Build(g *core.Game, role Role, depth int) *Tree {
	b := newBuilder(n.Name(), true, g, role)
	b.negamax(b.tree.Root(), depth)
	return b.tree
}

func (b *builder) negamax(id NodeID, depth int) float64 {
	n := b.tree.nodes[id]
	ms := moves(n.State)
	if cutoff(n.State, depth) || len(ms) == 0 {
		v := b.evaluate(id)
		b.tree.nodes[id].Value = v
		return v
	}

	best := math.Inf(-1)
	for _, mv := range ms {
		child := b.expand(id, mv)
		v := fromChild(n.Role, b.tree.nodes[child].Role, b.negamax(child, depth-1))
		if v > best {
			best = v
		}
	}

	b.tree.nodes[id].Value = best
	return best
}
