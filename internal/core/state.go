package core

import "fmt"

// Phase tells which sub-move is due next.
type Phase int

const (
	// PhaseGive: the current player chooses a piece for the opponent.
	PhaseGive Phase = iota
	// PhasePlace: the current player places the piece they were handed.
	PhasePlace
	// PhaseOver: somebody won or all pieces are used.
	PhaseOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseGive:
		return "give"
	case PhasePlace:
		return "place"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Game is the full state of a Quarto match.
//
// A turn is two sub-moves by the same player: place the pending piece, then
// give a piece to the opponent, who becomes the current player. Player 1
// opens by giving. Game holds only values, so Clone is a plain copy.
type Game struct {
	board     Board
	remaining PieceSet
	current   PlayerID
	pending   Piece
	hasPend   bool
	turn      int
	level     Level
	winner    PlayerID
}

// NewGame starts an empty game where Player 1 gives the first piece.
func NewGame(level Level) (*Game, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("new game: unknown %s", level)
	}
	return &Game{
		remaining: FullSet,
		current:   Player1,
		level:     level,
	}, nil
}

// NewGameFromBoard starts a game from a position where current must give
// the next piece. Pieces already on the board are not available.
// Boards that already hold a winning shape are rejected.
func NewGameFromBoard(level Level, b Board, current PlayerID) (*Game, error) {
	g, err := NewGame(level)
	if err != nil {
		return nil, err
	}
	if current != Player1 && current != Player2 {
		return nil, fmt.Errorf("new game: invalid current player %d", current)
	}
	if VerifyWinner(&b, level) {
		return nil, fmt.Errorf("new game: %w: board already has a winner", ErrGameOver)
	}
	g.board = b
	g.remaining = FullSet &^ b.Placed()
	g.current = current
	g.turn = 2 * b.Count()
	return g, nil
}

// Give hands piece p to the opponent, who becomes the current player.
func (g *Game) Give(p Piece) error {
	switch {
	case g.IsOver():
		return fmt.Errorf("give %s: %w", p, ErrGameOver)
	case g.hasPend:
		return fmt.Errorf("give %s: %w", p, ErrPendingPiece)
	case !p.Valid():
		return fmt.Errorf("give: %w: %d", ErrInvalidPiece, p)
	case !g.remaining.Has(p):
		return fmt.Errorf("give %s: %w", p, ErrPieceUnavailable)
	}
	g.pending = p
	g.hasPend = true
	g.turn++
	g.current = g.current.Opponent()
	return nil
}

// Place puts the pending piece at pos. The current player does not change:
// after placing they must give a piece, unless the placement ended the game.
func (g *Game) Place(pos Position) error {
	if g.IsOver() {
		return fmt.Errorf("place at %s: %w", pos, ErrGameOver)
	}
	if !g.hasPend {
		return fmt.Errorf("place at %s: %w", pos, ErrNoPendingPiece)
	}
	if err := g.board.Place(g.pending, pos); err != nil {
		return fmt.Errorf("place %s: %w", g.pending, err)
	}
	g.remaining = g.remaining.Without(g.pending)
	g.hasPend = false
	g.turn++
	if g.level.VerifyWinner(&g.board) {
		g.winner = g.current
	}
	return nil
}

// Clone returns a fully independent copy.
func (g *Game) Clone() *Game {
	c := *g
	return &c
}

// Board returns a copy of the board.
func (g *Game) Board() Board { return g.board }

// Level returns the active rule level.
func (g *Game) Level() Level { return g.level }

// Current returns the player who makes the next sub-move.
func (g *Game) Current() PlayerID { return g.current }

// Turn counts the sub-moves played so far.
func (g *Game) Turn() int { return g.turn }

// Opening reports whether no sub-move has been played yet.
func (g *Game) Opening() bool { return g.turn == 0 }

// Pending returns the piece waiting to be placed, if any.
func (g *Game) Pending() (Piece, bool) { return g.pending, g.hasPend }

// Remaining returns the pieces not yet placed, in canonical order.
// The pending piece is included until it is placed.
func (g *Game) Remaining() []Piece { return g.remaining.Pieces() }

// RemainingSet returns the unplaced pieces as a set.
func (g *Game) RemainingSet() PieceSet { return g.remaining }

// HasRemaining reports whether p has not been placed yet.
func (g *Game) HasRemaining(p Piece) bool { return g.remaining.Has(p) }

// FreePositions lists the empty cells in row-major order.
func (g *Game) FreePositions() []Position { return g.board.FreePositions() }

// Winner returns the player who completed a winning shape.
func (g *Game) Winner() (PlayerID, bool) { return g.winner, g.winner != NoPlayer }

// IsDraw reports whether every piece was placed without a winner.
func (g *Game) IsDraw() bool {
	return g.winner == NoPlayer && g.remaining.Empty()
}

// IsOver reports whether the game has a winner or no pieces remain.
func (g *Game) IsOver() bool {
	return g.winner != NoPlayer || g.remaining.Empty()
}

// Phase returns the kind of sub-move due next.
func (g *Game) Phase() Phase {
	switch {
	case g.IsOver():
		return PhaseOver
	case g.hasPend:
		return PhasePlace
	default:
		return PhaseGive
	}
}

// WinningShape returns the cells of the winning group, if any.
func (g *Game) WinningShape() ([BoardSize]Position, bool) {
	if g.winner == NoPlayer {
		return [BoardSize]Position{}, false
	}
	return WinningShape(&g.board, g.level)
}
