package core

import "math/bits"

// alignmentWeights maps the number of shared traits in a line to its score.
var alignmentWeights = [NumAttributes + 1]int{0, 1, 10, 100, 1000}

// CommonAttributes counts the traits shared by every piece in the line.
// Empty cells are ignored; fewer than two pieces share nothing.
func CommonAttributes(l Line) int {
	var first Piece
	n := 0
	same := uint8(1<<NumAttributes - 1)
	for _, c := range l {
		if !c.Occupied {
			continue
		}
		if n == 0 {
			first = c.Piece
		} else {
			same &^= uint8(c.Piece ^ first)
		}
		n++
	}
	if n < 2 {
		return 0
	}
	return bits.OnesCount8(same)
}

// ScoreAlignment returns the weighted contribution of a single line.
func ScoreAlignment(l Line) int {
	return alignmentWeights[CommonAttributes(l)]
}

// EvaluateAlignments sums the weighted shared-trait counts of the lines.
func EvaluateAlignments(lines []Line) int {
	total := 0
	for _, l := range lines {
		total += ScoreAlignment(l)
	}
	return total
}

// Evaluate scores the board over its 10 canonical alignments.
func Evaluate(b *Board) int {
	lines := b.Alignments()
	return EvaluateAlignments(lines[:])
}
