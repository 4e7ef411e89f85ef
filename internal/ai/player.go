// Package ai turns search trees into Quarto moves.
package ai

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-quarto/internal/core"
	"github.com/vovakirdan/tui-quarto/internal/search"
)

// Player picks moves with one search algorithm at a fixed depth.
// A Player is not safe for concurrent use; create one per game.
type Player struct {
	algo   search.Algorithm
	depth  int
	logger *log.Logger
	last   search.Stats
}

// Option configures a Player.
type Option func(*Player)

// WithDepth sets the search depth in sub-moves. Values below 1 are ignored.
func WithDepth(depth int) Option {
	return func(p *Player) {
		if depth > 0 {
			p.depth = depth
		}
	}
}

// WithLogger sets the logger used for move traces.
func WithLogger(l *log.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a player backed by algo, searching search.DefaultDepth by default.
func New(algo search.Algorithm, opts ...Option) *Player {
	p := &Player{
		algo:   algo,
		depth:  search.DefaultDepth,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the algorithm's display name.
func (p *Player) Name() string { return p.algo.Title() }

// Depth returns the search depth.
func (p *Player) Depth() int { return p.depth }

// LastStats returns the counters of the most recent search.
func (p *Player) LastStats() search.Stats { return p.last }

// ChoosePiece picks the piece to hand to the opponent without changing g.
// Pieces that let the opponent win on the spot are never chosen while a
// safer one was searched; with nothing better the first remaining piece
// is returned. The bool is false when g is not waiting for a give.
func (p *Player) ChoosePiece(g *core.Game) (core.Piece, bool) {
	if g.Phase() != core.PhaseGive {
		return 0, false
	}

	tree := p.algo.Build(g, search.Maximizer, p.depth)
	p.last = tree.Stats()

	best, ok := tree.BestChildWhere(func(n search.Node) bool {
		return !CanWinNow(n.State)
	})
	if ok {
		piece := tree.Node(best).Piece
		p.logger.Debug("chose piece", "ai", p.Name(), "piece", piece,
			"score", tree.Score(best), "nodes", p.last.Nodes, "cutoffs", p.last.Cutoffs)
		return piece, true
	}

	piece, ok := g.RemainingSet().First()
	if ok {
		p.logger.Debug("no safe piece, using first remaining", "ai", p.Name(), "piece", piece)
	}
	return piece, ok
}

// ChoosePosition picks where to place the pending piece without changing g.
// A winning cell is taken immediately; otherwise the best searched cell,
// falling back to the first free one. The bool is false when g has no
// pending piece.
func (p *Player) ChoosePosition(g *core.Game) (core.Position, bool) {
	if g.Phase() != core.PhasePlace {
		return core.Position{}, false
	}

	if pos, ok := WinningPosition(g); ok {
		p.last = search.Stats{}
		p.logger.Debug("winning placement", "ai", p.Name(), "pos", pos)
		return pos, true
	}

	tree := p.algo.Build(g, search.Maximizer, p.depth)
	p.last = tree.Stats()

	if best, ok := tree.BestChild(); ok {
		pos := tree.Node(best).Position
		p.logger.Debug("chose position", "ai", p.Name(), "pos", pos,
			"score", tree.Score(best), "nodes", p.last.Nodes, "cutoffs", p.last.Cutoffs)
		return pos, true
	}

	free := g.FreePositions()
	if len(free) == 0 {
		return core.Position{}, false
	}
	return free[0], true
}

// SelectPieceToGive chooses a piece and hands it over in g.
func (p *Player) SelectPieceToGive(g *core.Game) (core.Piece, error) {
	piece, ok := p.ChoosePiece(g)
	if !ok {
		return 0, fmt.Errorf("%s: select piece: %w", p.Name(), core.ErrNoMove)
	}
	if err := g.Give(piece); err != nil {
		return 0, fmt.Errorf("%s: select piece: %w", p.Name(), err)
	}
	return piece, nil
}

// SelectAndApplyPlacement chooses a cell for the pending piece and places it in g.
func (p *Player) SelectAndApplyPlacement(g *core.Game) (core.Position, error) {
	pos, ok := p.ChoosePosition(g)
	if !ok {
		return core.Position{}, fmt.Errorf("%s: select position: %w", p.Name(), core.ErrNoMove)
	}
	if err := g.Place(pos); err != nil {
		return core.Position{}, fmt.Errorf("%s: select position: %w", p.Name(), err)
	}
	return pos, nil
}

// WinningPosition returns the first free cell where the pending piece wins.
func WinningPosition(g *core.Game) (core.Position, bool) {
	if g.Phase() != core.PhasePlace {
		return core.Position{}, false
	}
	for _, pos := range g.FreePositions() {
		c := g.Clone()
		if err := c.Place(pos); err != nil {
			continue
		}
		if _, won := c.Winner(); won {
			return pos, true
		}
	}
	return core.Position{}, false
}

// CanWinNow reports whether the player holding the pending piece can win
// with their next placement.
func CanWinNow(g *core.Game) bool {
	_, ok := WinningPosition(g)
	return ok
}
