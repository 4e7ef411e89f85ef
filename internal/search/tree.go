// Package search builds adversarial search trees over Quarto positions.
// Every ply is one sub-move: either placing the pending piece or choosing
// the piece handed to the opponent.
package search

import (
	"math"

	"github.com/vovakirdan/tui-quarto/internal/core"
)

// DefaultDepth is the number of sub-moves searched below the root.
const DefaultDepth = 2

// Role is the side a node is evaluated for.
type Role int

const (
	Maximizer Role = iota
	Minimizer
)

// Opposite returns the other role.
func (r Role) Opposite() Role {
	if r == Maximizer {
		return Minimizer
	}
	return Maximizer
}

// String returns the role name.
func (r Role) String() string {
	if r == Maximizer {
		return "max"
	}
	return "min"
}

// NodeID indexes a node inside its Tree.
type NodeID int

// NoNode marks a missing child or sibling link.
const NoNode NodeID = -1

// Node is one explored state. Children form a singly linked sibling list
// starting at FirstChild.
type Node struct {
	Role  Role
	State *core.Game
	// Value is the backed-up score. Its frame depends on the algorithm,
	// use Tree.Score to compare children.
	Value float64
	Depth int

	Piece       core.Piece // piece handed over to reach this node
	HasPiece    bool
	Position    core.Position // cell played to reach this node
	HasPosition bool

	FirstChild  NodeID
	NextSibling NodeID
	lastChild   NodeID
}

// Stats counts the work done by one search.
type Stats struct {
	Nodes   int // nodes created, root included
	Leaves  int // static evaluations
	Cutoffs int // sibling lists abandoned by pruning
}

// Tree is an arena of nodes rooted at index 0.
type Tree struct {
	algorithm string
	nodes     []Node
	// negamax is true when node values are stored from the node's own
	// role; false when they are stored from the maximizer's side.
	negamax bool
	stats   Stats
}

func newTree(algorithm string, negamax bool, root *core.Game, role Role) *Tree {
	t := &Tree{algorithm: algorithm, negamax: negamax}
	t.add(Node{Role: role, State: root})
	return t
}

func (t *Tree) add(n Node) NodeID {
	n.FirstChild, n.NextSibling, n.lastChild = NoNode, NoNode, NoNode
	t.nodes = append(t.nodes, n)
	t.stats.Nodes++
	return NodeID(len(t.nodes) - 1)
}

// appendChild links a new node after the parent's last child.
func (t *Tree) appendChild(parent NodeID, n Node) NodeID {
	id := t.add(n)
	p := &t.nodes[parent]
	if p.lastChild == NoNode {
		p.FirstChild = id
	} else {
		t.nodes[p.lastChild].NextSibling = id
	}
	p.lastChild = id
	return id
}

// Algorithm returns the name of the algorithm that built the tree.
func (t *Tree) Algorithm() string { return t.algorithm }

// Root returns the root node id.
func (t *Tree) Root() NodeID { return 0 }

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// Stats returns search counters.
func (t *Tree) Stats() Stats { return t.stats }

// Node returns a copy of the node.
func (t *Tree) Node(id NodeID) Node { return t.nodes[id] }

// Children lists the children of id in creation order.
func (t *Tree) Children(id NodeID) []NodeID {
	var out []NodeID
	for c := t.nodes[id].FirstChild; c != NoNode; c = t.nodes[c].NextSibling {
		out = append(out, c)
	}
	return out
}

// Score returns the value of a node from the root role's point of view.
func (t *Tree) Score(id NodeID) float64 {
	n := t.nodes[id]
	root := t.nodes[0].Role
	if t.negamax {
		return fromChild(root, n.Role, n.Value)
	}
	return orient(root, n.Value)
}

// RootValue returns the root value from the root role's point of view.
func (t *Tree) RootValue() float64 {
	return t.Score(0)
}

// BestChild returns the first root child with the strictly greatest score.
func (t *Tree) BestChild() (NodeID, bool) {
	return t.bestOf(t.Children(0))
}

// BestChildWhere is BestChild restricted to children accepted by keep.
func (t *Tree) BestChildWhere(keep func(Node) bool) (NodeID, bool) {
	var candidates []NodeID
	for _, c := range t.Children(0) {
		if keep(t.nodes[c]) {
			candidates = append(candidates, c)
		}
	}
	return t.bestOf(candidates)
}

func (t *Tree) bestOf(ids []NodeID) (NodeID, bool) {
	best, bestScore := NoNode, math.Inf(-1)
	for _, c := range ids {
		s := t.Score(c)
		if best == NoNode || s > bestScore {
			best, bestScore = c, s
		}
	}
	return best, best != NoNode
}
