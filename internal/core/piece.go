// Package core provides the Quarto game model: pieces, board, win rules,
// heuristic scoring and game state. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import (
	"fmt"
	"strings"
)

// Attribute identifies one of the four binary traits carried by a piece.
type Attribute int

const (
	AttrHeight Attribute = iota
	AttrShape
	AttrFill
	AttrColor
)

// NumAttributes is the number of traits every piece carries.
const NumAttributes = 4

// String returns the lowercase attribute name.
func (a Attribute) String() string {
	switch a {
	case AttrHeight:
		return "height"
	case AttrShape:
		return "shape"
	case AttrFill:
		return "fill"
	case AttrColor:
		return "color"
	default:
		return "unknown"
	}
}

// Height is the first trait of a piece.
type Height uint8

const (
	Tall Height = iota
	Short
)

// Shape is the second trait of a piece.
type Shape uint8

const (
	Square Shape = iota
	Round
)

// Fill is the third trait of a piece.
type Fill uint8

const (
	Solid Fill = iota
	Hollow
)

// Color is the fourth trait of a piece.
type Color uint8

const (
	Dark Color = iota
	Light
)

// NumPieces is the size of a full Quarto set.
const NumPieces = 16

// Piece is an immutable Quarto piece packed into four bits:
// height (bit 3), shape (bit 2), fill (bit 1), color (bit 0).
// The zero value is a tall, square, solid, dark piece.
// Two pieces are the same piece iff they are equal.
type Piece uint8

// NewPiece builds a piece from its four traits.
// Returns ErrInvalidPiece if any trait is out of range.
func NewPiece(h Height, s Shape, f Fill, c Color) (Piece, error) {
	if h > Short || s > Round || f > Hollow || c > Light {
		return 0, fmt.Errorf("%w: height=%d shape=%d fill=%d color=%d", ErrInvalidPiece, h, s, f, c)
	}
	return Piece(uint8(h)<<3 | uint8(s)<<2 | uint8(f)<<1 | uint8(c)), nil
}

// AllPieces returns the full set in canonical order:
// height varies slowest, then shape, fill and color.
func AllPieces() [NumPieces]Piece {
	var set [NumPieces]Piece
	for i := range set {
		set[i] = Piece(i)
	}
	return set
}

// Valid reports whether the piece belongs to the 16-piece set.
func (p Piece) Valid() bool {
	return p < NumPieces
}

// Value returns the 0/1 value of the given trait.
func (p Piece) Value(a Attribute) uint8 {
	return uint8(p>>(NumAttributes-1-int(a))) & 1
}

func (p Piece) Height() Height { return Height(p.Value(AttrHeight)) }
func (p Piece) Shape() Shape   { return Shape(p.Value(AttrShape)) }
func (p Piece) Fill() Fill     { return Fill(p.Value(AttrFill)) }
func (p Piece) Color() Color   { return Color(p.Value(AttrColor)) }

// Shares reports whether two pieces have the same value for a trait.
func (p Piece) Shares(other Piece, a Attribute) bool {
	return p.Value(a) == other.Value(a)
}

// codeLetters holds the letter for values 0 and 1 of each trait, in attribute order.
var codeLetters = [NumAttributes][2]byte{
	{'T', 'S'}, // tall, short
	{'Q', 'R'}, // square, round
	{'F', 'H'}, // full (solid), hollow
	{'D', 'L'}, // dark, light
}

// Code returns the four-letter code of the piece, e.g. "TQFD".
func (p Piece) Code() string {
	var b [NumAttributes]byte
	for a := range NumAttributes {
		b[a] = codeLetters[a][p.Value(Attribute(a))]
	}
	return string(b[:])
}

// String implements fmt.Stringer.
func (p Piece) String() string {
	return p.Code()
}

// ParsePiece parses a four-letter code as produced by Code.
// Letters are case-insensitive.
func ParsePiece(code string) (Piece, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != NumAttributes {
		return 0, fmt.Errorf("%w: code %q must have %d letters", ErrInvalidPiece, code, NumAttributes)
	}

	var p Piece
	for a := range NumAttributes {
		switch code[a] {
		case codeLetters[a][0]:
		case codeLetters[a][1]:
			p |= 1 << (NumAttributes - 1 - a)
		default:
			return 0, fmt.Errorf("%w: bad %s letter %q in %q", ErrInvalidPiece, Attribute(a), code[a], code)
		}
	}
	return p, nil
}

// PieceSet is a set of pieces stored as a bitmask indexed by piece value.
// Iteration always follows canonical order.
type PieceSet uint16

// FullSet contains all 16 pieces.
const FullSet PieceSet = 1<<NumPieces - 1

// Has reports whether p is in the set.
func (s PieceSet) Has(p Piece) bool {
	return p.Valid() && s&(1<<p) != 0
}

// With returns the set with p added.
func (s PieceSet) With(p Piece) PieceSet {
	return s | 1<<p
}

// Without returns the set with p removed.
func (s PieceSet) Without(p Piece) PieceSet {
	return s &^ (1 << p)
}

// Len returns the number of pieces in the set.
func (s PieceSet) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Empty reports whether the set has no pieces.
func (s PieceSet) Empty() bool {
	return s == 0
}

// Pieces returns the members in canonical order.
func (s PieceSet) Pieces() []Piece {
	out := make([]Piece, 0, s.Len())
	for i := range NumPieces {
		if s&(1<<i) != 0 {
			out = append(out, Piece(i))
		}
	}
	return out
}

// First returns the lowest piece in canonical order.
func (s PieceSet) First() (Piece, bool) {
	for i := range NumPieces {
		if s&(1<<i) != 0 {
			return Piece(i), true
		}
	}
	return 0, false
}
