package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Level selects which shapes count as a win. Each level includes the
// shapes of every lower level.
type Level int

const (
	Level1 Level = iota + 1 // rows, columns, diagonals
	Level2                  // + 2x2 squares
	Level3                  // + corners of 3x3 blocks
	Level4                  // + rotated squares
)

// MinLevel and MaxLevel bound the valid rule levels.
const (
	MinLevel = Level1
	MaxLevel = Level4
)

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// String returns "level N".
func (l Level) String() string {
	return "level " + strconv.Itoa(int(l))
}

// Description summarises the shapes that win at this level.
func (l Level) Description() string {
	switch l {
	case Level1:
		return "rows, columns and diagonals"
	case Level2:
		return "lines plus 2x2 squares"
	case Level3:
		return "lines, 2x2 squares and corners of 3x3 blocks"
	case Level4:
		return "all of the above plus rotated squares"
	default:
		return "unknown"
	}
}

// ParseLevel accepts "1".."4" or "level1".."level4".
func ParseLevel(s string) (Level, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "level")
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !Level(n).Valid() {
		return 0, fmt.Errorf("unknown rule level %q (want 1-4)", s)
	}
	return Level(n), nil
}

// VerifyWinner reports whether the board contains a winning shape at this level.
func (l Level) VerifyWinner(b *Board) bool {
	_, ok := WinningShape(b, l)
	return ok
}

// VerifyWinner reports whether b has four pieces sharing a trait in any
// shape enabled at the given level.
func VerifyWinner(b *Board, l Level) bool {
	return l.VerifyWinner(b)
}

// family finds a winning group of one geometric kind.
type family func(b *Board) ([BoardSize]Position, bool)

// families returns the shape families enabled at a level.
func (l Level) families() []family {
	fs := []family{findLine}
	if l >= Level2 {
		fs = append(fs, fixedFamily(squareShapes))
	}
	if l >= Level3 {
		fs = append(fs, fixedFamily(cornerShapes))
	}
	if l >= Level4 {
		fs = append(fs, fixedFamily(pinwheelShapes))
	}
	return fs
}

// WinningShape returns the first winning group found on the board.
// Families are checked from lines upwards; any order gives the same answer
// to "is there a winner".
func WinningShape(b *Board, l Level) ([BoardSize]Position, bool) {
	if !l.Valid() {
		return [BoardSize]Position{}, false
	}
	for _, find := range l.families() {
		if group, ok := find(b); ok {
			return group, true
		}
	}
	return [BoardSize]Position{}, false
}

// directions are the four line orientations: horizontal, vertical and
// both diagonals.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// findLine scans from every occupied cell in each direction. The scan
// walks back to the edge first so the full line through the cell is
// tested no matter where the scan starts.
func findLine(b *Board) ([BoardSize]Position, bool) {
	for r := range BoardSize {
		for c := range BoardSize {
			start := Position{Row: r, Col: c}
			if b.IsFree(start) {
				continue
			}
			for _, d := range directions {
				group, ok := lineThrough(start, d[0], d[1])
				if !ok {
					continue
				}
				if lineWins(b.Cells(group)) {
					return group, true
				}
			}
		}
	}
	return [BoardSize]Position{}, false
}

// lineThrough returns the four in-bounds cells of the line through p in
// direction (dr, dc), or false when that line is shorter than the board.
func lineThrough(p Position, dr, dc int) ([BoardSize]Position, bool) {
	for p.Add(-dr, -dc).Valid() {
		p = p.Add(-dr, -dc)
	}
	var group [BoardSize]Position
	for i := range BoardSize {
		if !p.Valid() {
			return group, false
		}
		group[i] = p
		p = p.Add(dr, dc)
	}
	return group, true
}

func fixedFamily(shapes [][BoardSize]Position) family {
	return func(b *Board) ([BoardSize]Position, bool) {
		for _, group := range shapes {
			if lineWins(b.Cells(group)) {
				return group, true
			}
		}
		return [BoardSize]Position{}, false
	}
}

func lineWins(l Line) bool {
	return SharesAttribute(l[:])
}

// shapesFrom builds every in-bounds group made of the given offsets,
// anchored at each cell. Anchors that push a cell off the board are skipped.
func shapesFrom(offsets [BoardSize][2]int) [][BoardSize]Position {
	var out [][BoardSize]Position
	for r := range BoardSize {
		for c := range BoardSize {
			anchor := Position{Row: r, Col: c}
			var group [BoardSize]Position
			ok := true
			for i, off := range offsets {
				group[i] = anchor.Add(off[0], off[1])
				if !group[i].Valid() {
					ok = false
					break
				}
			}
			if ok {
				out = append(out, group)
			}
		}
	}
	return out
}

var (
	// squareShapes are the nine 2x2 sub-squares.
	squareShapes = shapesFrom([BoardSize][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	// cornerShapes are the corners of the four 3x3 sub-blocks.
	cornerShapes = shapesFrom([BoardSize][2]int{{0, 0}, {0, 2}, {2, 0}, {2, 2}})
	// pinwheelShapes are squares rotated by 45 degrees.
	pinwheelShapes = shapesFrom([BoardSize][2]int{{0, 0}, {1, 1}, {1, -1}, {2, 0}})
)

// checkOrder is the order traits are compared in. Any order gives the
// same result.
var checkOrder = [NumAttributes]Attribute{AttrHeight, AttrColor, AttrFill, AttrShape}

// SharesAttribute reports whether the group holds exactly four pieces that
// agree on at least one trait. Groups with empty cells never match.
func SharesAttribute(cells []Cell) bool {
	if len(cells) != BoardSize {
		return false
	}
	for _, c := range cells {
		if !c.Occupied {
			return false
		}
	}
	for _, attr := range checkOrder {
		if allEqual(cells, attr) {
			return true
		}
	}
	return false
}

func allEqual(cells []Cell, attr Attribute) bool {
	first := cells[0].Piece
	for _, c := range cells[1:] {
		if !c.Piece.Shares(first, attr) {
			return false
		}
	}
	return true
}
