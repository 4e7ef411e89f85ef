package core

import "fmt"

// Cell is a single board square. Piece is meaningful only when Occupied.
type Cell struct {
	Piece    Piece
	Occupied bool
}

// Line is an ordered group of four cells.
type Line [BoardSize]Cell

// NumAlignments is the number of rows, columns and main diagonals.
const NumAlignments = 2*BoardSize + 2

// Board is the 4x4 grid. It is a value type: assigning a Board copies it.
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

// Place puts a piece on a free cell. Occupied cells are never overwritten.
func (b *Board) Place(p Piece, pos Position) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: (%d, %d)", ErrInvalidPosition, pos.Row, pos.Col)
	}
	if !p.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPiece, p)
	}
	if b.cells[pos.Row][pos.Col].Occupied {
		return fmt.Errorf("%w: %s", ErrCellOccupied, pos)
	}
	b.cells[pos.Row][pos.Col] = Cell{Piece: p, Occupied: true}
	return nil
}

// At returns the piece at pos, if any. Off-board positions are empty.
func (b *Board) At(pos Position) (Piece, bool) {
	c := b.Cell(pos)
	return c.Piece, c.Occupied
}

// Cell returns the cell at pos. Off-board positions yield an empty cell.
func (b *Board) Cell(pos Position) Cell {
	if !pos.Valid() {
		return Cell{}
	}
	return b.cells[pos.Row][pos.Col]
}

// IsFree reports whether pos is on the board and empty.
func (b *Board) IsFree(pos Position) bool {
	return pos.Valid() && !b.cells[pos.Row][pos.Col].Occupied
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if b.cells[r][c].Occupied {
				n++
			}
		}
	}
	return n
}

// IsEmpty reports whether no piece has been placed.
func (b *Board) IsEmpty() bool {
	return b.Count() == 0
}

// IsFull reports whether every cell is occupied.
func (b *Board) IsFull() bool {
	return b.Count() == NumCells
}

// FreePositions lists empty cells in row-major order.
func (b *Board) FreePositions() []Position {
	out := make([]Position, 0, NumCells)
	for r := range BoardSize {
		for c := range BoardSize {
			if !b.cells[r][c].Occupied {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// Placed returns the set of pieces on the board.
func (b *Board) Placed() PieceSet {
	var s PieceSet
	for r := range BoardSize {
		for c := range BoardSize {
			if cell := b.cells[r][c]; cell.Occupied {
				s = s.With(cell.Piece)
			}
		}
	}
	return s
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() Board {
	return *b
}

// Cells gathers the cells at the given positions. Off-board positions are empty.
func (b *Board) Cells(group [BoardSize]Position) Line {
	var l Line
	for i, pos := range group {
		l[i] = b.Cell(pos)
	}
	return l
}

// alignmentShapes lists the 4 rows, 4 columns and the 2 main diagonals.
var alignmentShapes = func() [NumAlignments][BoardSize]Position {
	var out [NumAlignments][BoardSize]Position
	for i := range BoardSize {
		for j := range BoardSize {
			out[i][j] = Position{Row: i, Col: j}
			out[BoardSize+i][j] = Position{Row: j, Col: i}
		}
		out[2*BoardSize][i] = Position{Row: i, Col: i}
		out[2*BoardSize+1][i] = Position{Row: i, Col: BoardSize - 1 - i}
	}
	return out
}()

// Alignments returns the 10 canonical lines: rows, then columns, then the
// main diagonal and the anti-diagonal.
func (b *Board) Alignments() [NumAlignments]Line {
	var out [NumAlignments]Line
	for i, shape := range alignmentShapes {
		out[i] = b.Cells(shape)
	}
	return out
}
