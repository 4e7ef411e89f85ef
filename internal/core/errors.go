package core

import "errors"

var (
	// ErrInvalidPiece is returned for a piece with an out-of-range trait.
	ErrInvalidPiece = errors.New("invalid piece")
	// ErrInvalidPosition is returned for coordinates outside the 4x4 grid.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrCellOccupied is returned when placing onto a filled cell.
	ErrCellOccupied = errors.New("cell already occupied")
	// ErrPieceUnavailable is returned when giving a piece that was already used.
	ErrPieceUnavailable = errors.New("piece not available")
	// ErrNoPendingPiece is returned when placing while no piece was handed over.
	ErrNoPendingPiece = errors.New("no piece to place")
	// ErrPendingPiece is returned when giving while a placement is still due.
	ErrPendingPiece = errors.New("pending piece must be placed first")
	// ErrGameOver is returned for any move after the game ended.
	ErrGameOver = errors.New("game is over")
	// ErrNoMove is returned by move selectors that have nothing to choose from.
	ErrNoMove = errors.New("no legal move")
)
