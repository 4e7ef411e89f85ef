package search

import "github.com/vovakirdan/tui-quarto/internal/core"

// Minimax expands the full tree and backs values up from the maximizer's
// side: maximizer nodes take the largest child, minimizer nodes the smallest.
type Minimax struct{}

func (Minimax) Name() string  { return "minimax" }
func (Minimax) Title() string { return "Minimax" }

// Build expands every sub-move down to depth and returns the explicit tree.
func (m Minimax) Build(g *core.Game, role Role, depth int) *Tree {
	b := newBuilder(m.Name(), false, g, role)
	b.minimax(b.tree.Root(), depth)
	return b.tree
}

func (b *builder) minimax(id NodeID, depth int) float64 {
	n := b.tree.nodes[id]
	ms := moves(n.State)
	if cutoff(n.State, depth) || len(ms) == 0 {
		v := orient(n.Role, b.evaluate(id))
		b.tree.nodes[id].Value = v
		return v
	}

	var best float64
	for i, mv := range ms {
		child := b.expand(id, mv)
		var v float64
		if c := b.tree.nodes[child]; c.State.IsOver() {
			// Finished games are scored on the spot.
			v = orient(c.Role, b.evaluate(child))
			b.tree.nodes[child].Value = v
		} else {
			v = b.minimax(child, depth-1)
		}

		switch {
		case i == 0:
			best = v
		case n.Role == Maximizer && v > best:
			best = v
		case n.Role == Minimizer && v < best:
			best = v
		}
	}

	b.tree.nodes[id].Value = best
	return best
}
