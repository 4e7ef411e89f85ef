package match

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-quarto/internal/core"
	"github.com/vovakirdan/tui-quarto/internal/registry"
)

// Match owns the live game. It is not safe for concurrent use: agents
// that think off the caller's goroutine should use Decide on a snapshot
// and hand the result back to Apply.
type Match struct {
	game      *core.Game
	seats     [2]Seat
	observers []Observer
	history   []Event
	logger    *log.Logger

	openingMoves int
	openingSeed  int64
}

// Option configures a Match.
type Option func(*Match)

// WithLogger sets the logger for move traces.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithObserver adds an observer called after every applied sub-move.
func WithObserver(o Observer) Option {
	return func(m *Match) {
		m.observers = append(m.observers, o)
	}
}

// WithRandomOpening plays n random sub-moves before anyone takes over.
func WithRandomOpening(n int, seed int64) Option {
	return func(m *Match) {
		m.openingMoves = n
		m.openingSeed = seed
	}
}

// New starts a match on an empty board. Player 1 gives first.
func New(level core.Level, p1, p2 Seat, opts ...Option) (*Match, error) {
	g, err := core.NewGame(level)
	if err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}

	m := &Match{
		game:   g,
		seats:  [2]Seat{p1, p2},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.openingMoves > 0 {
		if err := m.playRandomOpening(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Match) playRandomOpening() error {
	rng := rand.New(rand.NewSource(m.openingSeed))
	for i := 0; i < m.openingMoves && !m.game.IsOver(); i++ {
		var mv Move
		if m.game.Phase() == core.PhaseGive {
			rem := m.game.Remaining()
			mv = Move{Kind: MoveGive, Piece: rem[rng.Intn(len(rem))]}
		} else {
			free := m.game.FreePositions()
			mv = Move{Kind: MovePlace, Position: free[rng.Intn(len(free))]}
		}
		if err := m.Apply(mv); err != nil {
			return fmt.Errorf("match: random opening: %w", err)
		}
	}
	return nil
}

// Game returns a snapshot of the live game.
func (m *Match) Game() *core.Game {
	return m.game.Clone()
}

// Current returns the player due to move.
func (m *Match) Current() core.PlayerID {
	return m.game.Current()
}

// Seat returns the seat of a player.
func (m *Match) Seat(id core.PlayerID) Seat {
	if id == core.Player2 {
		return m.seats[1]
	}
	return m.seats[0]
}

// IsHumanTurn reports whether the next sub-move must come from a human.
func (m *Match) IsHumanTurn() bool {
	return !m.game.IsOver() && m.Seat(m.game.Current()).IsHuman()
}

// IsOver reports whether the game has ended.
func (m *Match) IsOver() bool {
	return m.game.IsOver()
}

// Give hands a piece over on behalf of the human to move.
func (m *Match) Give(p core.Piece) error {
	if err := m.checkHuman(); err != nil {
		return err
	}
	return m.Apply(Move{Kind: MoveGive, Piece: p})
}

// Place puts the pending piece on behalf of the human to move.
func (m *Match) Place(pos core.Position) error {
	if err := m.checkHuman(); err != nil {
		return err
	}
	return m.Apply(Move{Kind: MovePlace, Position: pos})
}

func (m *Match) checkHuman() error {
	if m.game.IsOver() {
		return core.ErrGameOver
	}
	if !m.IsHumanTurn() {
		return ErrNotHumanTurn
	}
	return nil
}

// Decide asks agent for the sub-move due in g. It never changes g, so it
// may run on a snapshot away from the match's goroutine.
func Decide(agent registry.Agent, g *core.Game) (Move, error) {
	switch g.Phase() {
	case core.PhaseGive:
		if p, ok := agent.ChoosePiece(g); ok {
			return Move{Kind: MoveGive, Piece: p}, nil
		}
	case core.PhasePlace:
		if pos, ok := agent.ChoosePosition(g); ok {
			return Move{Kind: MovePlace, Position: pos}, nil
		}
	default:
		return Move{}, core.ErrGameOver
	}
	return Move{}, fmt.Errorf("%s: %w", agent.Name(), core.ErrNoMove)
}

// Step lets the agent to move play one sub-move.
func (m *Match) Step() (Move, error) {
	if m.game.IsOver() {
		return Move{}, core.ErrGameOver
	}
	seat := m.Seat(m.game.Current())
	if seat.IsHuman() {
		return Move{}, ErrHumanSeat
	}

	mv, err := Decide(seat.Agent, m.game.Clone())
	if err != nil {
		return Move{}, err
	}
	return mv, m.Apply(mv)
}

// Run plays agent moves until the game ends, a human must move or ctx is done.
func (m *Match) Run(ctx context.Context) (Result, error) {
	for !m.game.IsOver() {
		if err := ctx.Err(); err != nil {
			return m.Result(), err
		}
		if _, err := m.Step(); err != nil {
			return m.Result(), err
		}
	}
	return m.Result(), nil
}

// Apply validates and plays a sub-move for the player to move, then
// notifies observers.
func (m *Match) Apply(mv Move) error {
	player := m.game.Current()

	var ev Event
	switch mv.Kind {
	case MoveGive:
		if err := m.game.Give(mv.Piece); err != nil {
			return err
		}
		ev = Event{Kind: EventGiven, Player: player, Piece: mv.Piece}
	case MovePlace:
		piece, _ := m.game.Pending()
		if err := m.game.Place(mv.Position); err != nil {
			return err
		}
		ev = Event{Kind: EventPlaced, Player: player, Piece: piece, Position: mv.Position}
	default:
		return fmt.Errorf("match: unknown move kind %d", mv.Kind)
	}
	ev.Turn = m.game.Turn()

	m.logger.Debug("move", "player", player, "seat", m.Seat(player).Name, "move", mv)
	m.emit(ev)

	if m.game.IsOver() {
		r := m.Result()
		m.logger.Info("game over", "winner", r.Winner, "turns", r.Turns, "draw", r.Draw())
		m.emit(Event{Kind: EventGameOver, Player: r.Winner, Turn: r.Turns})
	}
	return nil
}

func (m *Match) emit(ev Event) {
	m.history = append(m.history, ev)
	for _, o := range m.observers {
		o(ev)
	}
}

// History returns every event emitted so far.
func (m *Match) History() []Event {
	out := make([]Event, len(m.history))
	copy(out, m.history)
	return out
}

// Result reports the current outcome.
func (m *Match) Result() Result {
	w, _ := m.game.Winner()
	return Result{
		Over:   m.game.IsOver(),
		Winner: w,
		Turns:  m.game.Turn(),
	}
}
