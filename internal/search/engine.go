package search

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/tui-quarto/internal/core"
)

// Algorithm builds a search tree rooted at a game state.
type Algorithm interface {
	// Name returns the registry id, e.g. "alphabeta".
	Name() string
	// Title returns a human-readable name.
	Title() string
	// Build searches depth sub-moves below g. The root is evaluated for role
	// and belongs to the player to move in g.
	Build(g *core.Game, role Role, depth int) *Tree
}

var algorithms = map[string]Algorithm{
	"minimax":   Minimax{},
	"alphabeta": AlphaBeta{},
	"negamax":   Negamax{},
	"negabeta":  NegaBeta{},
}

// ByName returns the algorithm registered under name.
func ByName(name string) (Algorithm, error) {
	a, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("search: unknown algorithm %q", name)
	}
	return a, nil
}

// Names lists the algorithm ids in sorted order.
func Names() []string {
	out := make([]string, 0, len(algorithms))
	for name := range algorithms {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Sign handling shared by every algorithm. Values are either absolute
// (maximizer's side) or relative to a node's own role.

// orient converts between the maximizer's side and role's side.
func orient(role Role, v float64) float64 {
	if role == Maximizer {
		return v
	}
	return -v
}

// fromChild converts a child's relative value to its parent's side. The
// sign flips only when the mover changes between the two nodes.
func fromChild(parent, child Role, v float64) float64 {
	if parent == child {
		return v
	}
	return -v
}

// childWindow maps the parent's (alpha, beta) window onto the child's side.
func childWindow(parent, child Role, alpha, beta float64) (float64, float64) {
	if parent == child {
		return alpha, beta
	}
	return -beta, -alpha
}

// move is one sub-move leading from a node to a child.
type move struct {
	place bool
	pos   core.Position
	piece core.Piece
}

func (m move) String() string {
	if m.place {
		return "place at " + m.pos.String()
	}
	return "give " + m.piece.String()
}

// moves lists the sub-moves available in g: every free cell when a piece is
// pending, otherwise every remaining piece.
func moves(g *core.Game) []move {
	if g.IsOver() {
		return nil
	}
	if _, ok := g.Pending(); ok {
		free := g.FreePositions()
		out := make([]move, len(free))
		for i, pos := range free {
			out[i] = move{place: true, pos: pos}
		}
		return out
	}
	rem := g.Remaining()
	out := make([]move, len(rem))
	for i, p := range rem {
		out[i] = move{piece: p}
	}
	return out
}

// simulate applies m to a copy of g. The copy is always taken first so the
// parent state is never shared with a child. A rejected move means the
// move generator and the rules disagree, which is a bug.
func simulate(g *core.Game, m move) *core.Game {
	c := g.Clone()
	var err error
	if m.place {
		err = c.Place(m.pos)
	} else {
		err = c.Give(m.piece)
	}
	if err != nil {
		panic(fmt.Sprintf("search: simulate %s: %v", m, err))
	}
	return c
}

// builder carries what every algorithm needs while expanding a tree.
type builder struct {
	tree     *Tree
	rootSide core.PlayerID
	rootRole Role
}

func newBuilder(name string, negamax bool, g *core.Game, role Role) *builder {
	return &builder{
		tree:     newTree(name, negamax, g.Clone(), role),
		rootSide: g.Current(),
		rootRole: role,
	}
}

// roleOf returns the role of the player to move in g.
func (b *builder) roleOf(g *core.Game) Role {
	if g.Current() == b.rootSide {
		return b.rootRole
	}
	return b.rootRole.Opposite()
}

// expand simulates m from parent and links the resulting node.
func (b *builder) expand(parent NodeID, m move) NodeID {
	p := b.tree.nodes[parent]
	state := simulate(p.State, m)
	n := Node{
		Role:  b.roleOf(state),
		State: state,
		Depth: p.Depth + 1,
	}
	if m.place {
		n.Position, n.HasPosition = m.pos, true
	} else {
		n.Piece, n.HasPiece = m.piece, true
	}
	return b.tree.appendChild(parent, n)
}

// cutoff reports whether a node is searched no further.
func cutoff(g *core.Game, depth int) bool {
	return depth <= 0 || g.IsOver()
}

// evaluate scores a leaf from its own role's side: +Inf when the player to
// move has won, -Inf when the other one has, 0 for a draw and the
// alignment heuristic otherwise.
func (b *builder) evaluate(id NodeID) float64 {
	b.tree.stats.Leaves++
	g := b.tree.nodes[id].State
	if w, ok := g.Winner(); ok {
		if w == g.Current() {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	if g.IsDraw() {
		return 0
	}
	board := g.Board()
	return float64(core.Evaluate(&board))
}

// recordCutoff notes that the remaining siblings were skipped.
func (b *builder) recordCutoff() {
	b.tree.stats.Cutoffs++
}
