package core

import (
	"strings"
	"testing"
)

func mustPiece(t testing.TB, code string) Piece {
	t.Helper()
	p, err := ParsePiece(code)
	if err != nil {
		t.Fatalf("ParsePiece(%q): %v", code, err)
	}
	return p
}

// boardOf builds a board from four rows of space-separated piece codes;
// "...." marks an empty cell.
func boardOf(t testing.TB, rows [BoardSize]string) Board {
	t.Helper()
	var b Board
	for r, row := range rows {
		codes := strings.Fields(row)
		if len(codes) != BoardSize {
			t.Fatalf("row %d has %d cells, want %d", r, len(codes), BoardSize)
		}
		for c, code := range codes {
			if code == "...." {
				continue
			}
			if err := b.Place(mustPiece(t, code), Position{Row: r, Col: c}); err != nil {
				t.Fatalf("place %s at %d,%d: %v", code, r, c, err)
			}
		}
	}
	return b
}
