package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-quarto/internal/core"
)

// Styles use the 256-colour palette.
var (
	darkPieceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	lightPieceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	emptyCellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle     = lipgloss.NewStyle().Background(lipgloss.Color("238"))
	winStyle        = lipgloss.NewStyle().Background(lipgloss.Color("22"))
	labelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardFrame      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	selectedStyle   = lipgloss.NewStyle().Reverse(true)
)

// PieceGlyph draws a piece in four columns: brackets for the shape
// ([] square, () round), T or t for tall or short, and a filled or
// hollow dot. Colour carries the fourth trait.
func PieceGlyph(p core.Piece) string {
	open, closing := "[", "]"
	if p.Shape() == core.Round {
		open, closing = "(", ")"
	}
	height := "T"
	if p.Height() == core.Short {
		height = "t"
	}
	fill := "●"
	if p.Fill() == core.Hollow {
		fill = "○"
	}
	return open + height + fill + closing
}

// stylePiece renders a glyph in the piece's colour.
func stylePiece(p core.Piece) string {
	if p.Color() == core.Dark {
		return darkPieceStyle.Render(PieceGlyph(p))
	}
	return lightPieceStyle.Render(PieceGlyph(p))
}

// BoardView selects the decorations drawn on top of the board.
type BoardView struct {
	Cursor     core.Position
	ShowCursor bool
	Highlight  []core.Position // winning shape
}

func (v BoardView) highlighted(pos core.Position) bool {
	for _, h := range v.Highlight {
		if h == pos {
			return true
		}
	}
	return false
}

// RenderBoard draws the 4x4 grid with row and column labels.
func RenderBoard(b core.Board, v BoardView) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for c := range core.BoardSize {
		sb.WriteString(labelStyle.Render("  " + string(rune('1'+c)) + "  "))
	}
	for r := range core.BoardSize {
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render(string(rune('A'+r)) + " "))
		for c := range core.BoardSize {
			pos := core.Position{Row: r, Col: c}
			cell := emptyCellStyle.Render(" ·  ")
			if p, ok := b.At(pos); ok {
				cell = stylePiece(p)
			}
			cell = " " + cell + " "
			switch {
			case v.highlighted(pos):
				cell = winStyle.Render(cell)
			case v.ShowCursor && v.Cursor == pos:
				cell = cursorStyle.Render(cell)
			}
			sb.WriteString(cell)
		}
	}
	return boardFrame.Render(sb.String())
}

// trayWidth is the number of pieces per tray row.
const trayWidth = 8

// RenderTray draws the pieces still available, marking the selection.
func RenderTray(pieces []core.Piece, selected int, active bool) string {
	if len(pieces) == 0 {
		return emptyCellStyle.Render("(no pieces left)")
	}
	var sb strings.Builder
	for i, p := range pieces {
		if i > 0 && i%trayWidth == 0 {
			sb.WriteString("\n")
		}
		glyph := stylePiece(p)
		if active && i == selected {
			glyph = selectedStyle.Render(PieceGlyph(p))
		}
		sb.WriteString(glyph + " ")
	}
	return sb.String()
}

// PositionLabel returns the board coordinate shown to players, e.g. "B3".
func PositionLabel(p core.Position) string {
	return string(rune('A'+p.Row)) + string(rune('1'+p.Col))
}
