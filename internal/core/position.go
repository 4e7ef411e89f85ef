package core

import "fmt"

// BoardSize is the side length of the Quarto board.
const BoardSize = 4

// NumCells is the number of cells on the board.
const NumCells = BoardSize * BoardSize

// Position addresses a board cell by row and column, both in [0, BoardSize).
type Position struct {
	Row int
	Col int
}

// NewPosition creates a position, rejecting coordinates outside the board.
func NewPosition(row, col int) (Position, error) {
	p := Position{Row: row, Col: col}
	if !p.Valid() {
		return Position{}, fmt.Errorf("%w: (%d, %d)", ErrInvalidPosition, row, col)
	}
	return p, nil
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Add returns the position offset by (dr, dc). The result may be off the board.
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Index returns the row-major cell index.
func (p Position) Index() int {
	return p.Row*BoardSize + p.Col
}

// String returns the position as "row,col".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}
