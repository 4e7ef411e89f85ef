package core

import (
	"errors"
	"testing"
)

func TestNewPosition(t *testing.T) {
	tests := []struct {
		row, col int
		wantErr  bool
	}{
		{0, 0, false},
		{3, 3, false},
		{1, 2, false},
		{-1, 0, true},
		{0, 4, true},
		{4, 4, true},
	}

	for _, tc := range tests {
		p, err := NewPosition(tc.row, tc.col)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidPosition) {
				t.Errorf("NewPosition(%d, %d) error = %v, want ErrInvalidPosition", tc.row, tc.col, err)
			}
			continue
		}
		if err != nil || p.Row != tc.row || p.Col != tc.col {
			t.Errorf("NewPosition(%d, %d) = %v, %v", tc.row, tc.col, p, err)
		}
	}
}

func TestBoardPlace(t *testing.T) {
	var b Board
	p := mustPiece(t, "SRHL")
	pos := Position{Row: 2, Col: 1}

	if err := b.Place(p, pos); err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	got, ok := b.At(pos)
	if !ok || got != p {
		t.Errorf("At() = %v, %v; want %v, true", got, ok, p)
	}

	other := mustPiece(t, "TQFD")
	if err := b.Place(other, pos); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("Place() on occupied cell error = %v, want ErrCellOccupied", err)
	}
	if got, _ := b.At(pos); got != p {
		t.Errorf("occupied cell overwritten with %v", got)
	}

	if err := b.Place(other, Position{Row: 4, Col: 0}); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("Place() off board error = %v, want ErrInvalidPosition", err)
	}
	if err := b.Place(Piece(16), Position{Row: 0, Col: 0}); !errors.Is(err, ErrInvalidPiece) {
		t.Errorf("Place() bad piece error = %v, want ErrInvalidPiece", err)
	}
}

func TestBoardFreePositions(t *testing.T) {
	b := boardOf(t, [BoardSize]string{
		"TQFD .... .... ....",
		".... TQFL .... ....",
		".... .... .... ....",
		".... .... .... SRHL",
	})

	free := b.FreePositions()
	if len(free) != NumCells-3 {
		t.Fatalf("len(FreePositions()) = %d, want %d", len(free), NumCells-3)
	}
	if free[0] != (Position{Row: 0, Col: 1}) || free[len(free)-1] != (Position{Row: 3, Col: 2}) {
		t.Errorf("FreePositions() not row-major: first %v last %v", free[0], free[len(free)-1])
	}
	for i := 1; i < len(free); i++ {
		if free[i].Index() <= free[i-1].Index() {
			t.Errorf("FreePositions() out of order at %d", i)
		}
	}
	if b.Count() != 3 || b.IsEmpty() || b.IsFull() {
		t.Errorf("Count() = %d, IsEmpty() = %v, IsFull() = %v", b.Count(), b.IsEmpty(), b.IsFull())
	}
	if b.Placed().Len() != 3 {
		t.Errorf("Placed().Len() = %d, want 3", b.Placed().Len())
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	var b Board
	c := b.Clone()
	if err := c.Place(mustPiece(t, "TQFD"), Position{Row: 0, Col: 0}); err != nil {
		t.Fatal(err)
	}
	if !b.IsEmpty() {
		t.Error("placing on a clone changed the original")
	}
}

func TestAlignments(t *testing.T) {
	b := boardOf(t, [BoardSize]string{
		"TQFD .... .... TRHL",
		".... .... .... ....",
		".... .... .... ....",
		"SQFD .... .... SRHL",
	})

	lines := b.Alignments()
	if len(lines) != NumAlignments {
		t.Fatalf("len(Alignments()) = %d, want %d", len(lines), NumAlignments)
	}

	tests := []struct {
		name  string
		index int
		cell  int
		want  string
	}{
		{"row 0 start", 0, 0, "TQFD"},
		{"row 0 end", 0, 3, "TRHL"},
		{"row 3 start", 3, 0, "SQFD"},
		{"col 0 end", 4, 3, "SQFD"},
		{"col 3 start", 7, 0, "TRHL"},
		{"main diagonal end", 8, 3, "SRHL"},
		{"anti diagonal start", 9, 0, "TRHL"},
		{"anti diagonal end", 9, 3, "SQFD"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := lines[tc.index][tc.cell]
			if !c.Occupied || c.Piece.Code() != tc.want {
				t.Errorf("Alignments()[%d][%d] = %+v, want %s", tc.index, tc.cell, c, tc.want)
			}
		})
	}

	if lines[1][0].Occupied {
		t.Error("row 1 should be empty")
	}
}
