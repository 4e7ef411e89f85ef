package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-quarto/internal/core"
	"github.com/vovakirdan/tui-quarto/internal/match"
)

// Options configures a terminal game.
type Options struct {
	Level    core.Level
	Player1  match.Seat
	Player2  match.Seat
	AIDelay  time.Duration // pause before a computer move starts
	ShowHelp bool
	Logger   *log.Logger
	Width    int
	Height   int
}

// Model is the Bubble Tea model for one Quarto session.
type Model struct {
	opts    Options
	match   *match.Match
	gen     int // bumped on restart so stale agent results are dropped
	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	cursor   core.Position
	tray     int // index into the remaining pieces
	thinking bool
	lastMove string
	err      error
	width    int
	height   int
	quitting bool
}

// NewModel creates a model and starts the first game.
func NewModel(opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = opts.ShowHelp

	m := Model{
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    h,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:   opts.Width,
		height:  opts.Height,
	}
	if err := m.newMatch(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m *Model) newMatch() error {
	mt, err := match.New(m.opts.Level, m.opts.Player1, m.opts.Player2, match.WithLogger(m.opts.Logger))
	if err != nil {
		return err
	}
	m.match = mt
	m.gen++
	m.cursor = core.Position{}
	m.tray = 0
	m.thinking = false
	m.lastMove = ""
	m.err = nil
	return nil
}

// Init starts the first agent turn, if any.
func (m Model) Init() tea.Cmd {
	return m.scheduleAgent()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case aiMoveMsg:
		return m.handleAgentMove(msg)

	case spinner.TickMsg:
		if !m.thinking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		if !m.match.IsOver() {
			return m, nil
		}
		if err := m.newMatch(); err != nil {
			m.err = err
			return m, nil
		}
		return m, m.scheduleAgent()
	}

	if !m.match.IsHumanTurn() {
		return m, nil
	}

	if m.match.Game().Phase() == core.PhasePlace {
		return m.handlePlaceKey(msg)
	}
	return m.handleGiveKey(msg)
}

func (m Model) handlePlaceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor.Row = max(m.cursor.Row-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor.Row = min(m.cursor.Row+1, core.BoardSize-1)
	case key.Matches(msg, m.keys.Left):
		m.cursor.Col = max(m.cursor.Col-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cursor.Col = min(m.cursor.Col+1, core.BoardSize-1)
	case key.Matches(msg, m.keys.Select):
		pending, _ := m.match.Game().Pending()
		if err := m.match.Place(m.cursor); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.lastMove = fmt.Sprintf("You placed %s at %s", PieceGlyph(pending), PositionLabel(m.cursor))
		return m, m.scheduleAgent()
	}
	return m, nil
}

func (m Model) handleGiveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	remaining := m.match.Game().Remaining()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.tray = max(m.tray-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.tray = min(m.tray+1, len(remaining)-1)
	case key.Matches(msg, m.keys.Up):
		m.tray = max(m.tray-trayWidth, 0)
	case key.Matches(msg, m.keys.Down):
		m.tray = min(m.tray+trayWidth, len(remaining)-1)
	case key.Matches(msg, m.keys.Select):
		if m.tray >= len(remaining) {
			return m, nil
		}
		p := remaining[m.tray]
		if err := m.match.Give(p); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.lastMove = fmt.Sprintf("You gave %s", PieceGlyph(p))
		m.tray = min(m.tray, len(remaining)-2)
		m.tray = max(m.tray, 0)
		return m, m.scheduleAgent()
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// scheduleAgent waits out the configured delay before an agent moves.
func (m Model) scheduleAgent() tea.Cmd {
	if m.match.IsOver() || m.match.IsHumanTurn() {
		return nil
	}
	return tickCmd(m.opts.AIDelay, m.gen)
}

// handleTick starts the agent on a snapshot so Update never blocks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.thinking || m.match.IsOver() || m.match.IsHumanTurn() {
		return m, nil
	}
	m.thinking = true

	agent := m.match.Seat(m.match.Current()).Agent
	snapshot := m.match.Game()
	gen := m.gen
	think := func() tea.Msg {
		mv, err := match.Decide(agent, snapshot)
		return aiMoveMsg{gen: gen, move: mv, err: err}
	}
	return m, tea.Batch(think, m.spinner.Tick)
}

// handleAgentMove applies a finished agent decision.
func (m Model) handleAgentMove(msg aiMoveMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}
	m.thinking = false
	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}

	player := m.match.Current()
	name := m.match.Seat(player).Name
	pending, _ := m.match.Game().Pending()
	if err := m.match.Apply(msg.move); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	if msg.move.Kind == match.MovePlace {
		m.lastMove = fmt.Sprintf("%s placed %s at %s", name, PieceGlyph(pending), PositionLabel(msg.move.Position))
	} else {
		m.lastMove = fmt.Sprintf("%s gave %s", name, PieceGlyph(msg.move.Piece))
	}
	return m, m.scheduleAgent()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	g := m.match.Game()
	board := g.Board()
	view := BoardView{
		Cursor:     m.cursor,
		ShowCursor: m.match.IsHumanTurn() && g.Phase() == core.PhasePlace,
	}
	if shape, ok := g.WinningShape(); ok {
		view.Highlight = shape[:]
	}

	var side strings.Builder
	if p, ok := g.Pending(); ok {
		side.WriteString("To place: " + stylePiece(p) + "\n\n")
	}
	giving := m.match.IsHumanTurn() && g.Phase() == core.PhaseGive
	side.WriteString("Pieces:\n")
	side.WriteString(RenderTray(availablePieces(g), m.tray, giving))

	body := lipgloss.JoinHorizontal(lipgloss.Top, RenderBoard(board, view), "  ", side.String())

	lines := []string{
		titleStyle.Render(fmt.Sprintf("Quarto · %s (%s)", g.Level(), g.Level().Description())),
		"",
		body,
		"",
		m.status(g),
	}
	if m.lastMove != "" {
		lines = append(lines, labelStyle.Render(m.lastMove))
	}
	if m.err != nil {
		lines = append(lines, errorStyle.Render(friendlyError(m.err)))
	}
	lines = append(lines, "", m.help.View(m.keys))

	return strings.Join(lines, "\n")
}

// availablePieces lists the pieces that can still be given.
func availablePieces(g *core.Game) []core.Piece {
	set := g.RemainingSet()
	if p, ok := g.Pending(); ok {
		set = set.Without(p)
	}
	return set.Pieces()
}

func (m Model) status(g *core.Game) string {
	if g.IsOver() {
		if w, ok := g.Winner(); ok {
			return fmt.Sprintf("%s (%s) wins! Press r for a new game.", m.match.Seat(w).Name, w)
		}
		return "Draw: every piece is on the board. Press r for a new game."
	}

	seat := m.match.Seat(g.Current())
	action := "give a piece to the opponent"
	if g.Phase() == core.PhasePlace {
		action = "place the piece"
	}
	if seat.IsHuman() {
		return fmt.Sprintf("%s, %s.", seat.Name, action)
	}
	if m.thinking {
		return fmt.Sprintf("%s %s is thinking...", m.spinner.View(), seat.Name)
	}
	return fmt.Sprintf("%s will %s.", seat.Name, action)
}

func friendlyError(err error) string {
	switch {
	case errors.Is(err, core.ErrCellOccupied):
		return "That cell is taken."
	case errors.Is(err, core.ErrNoMove):
		return "The computer could not find a move."
	default:
		return err.Error()
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
