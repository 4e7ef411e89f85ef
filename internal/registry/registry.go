// Package registry provides a global registry of computer opponents.
// Opponents register themselves in init() functions, allowing the CLI and
// the terminal UI to discover and instantiate them by id.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-quarto/internal/core"
)

// Agent chooses Quarto sub-moves. Implementations never modify the game
// they are given; the caller applies the returned move.
type Agent interface {
	// Name returns a human-readable name for display (e.g., "Alpha-Beta").
	Name() string

	// ChoosePiece returns the piece to hand over. The bool is false when
	// the game is not waiting for a give.
	ChoosePiece(g *core.Game) (core.Piece, bool)

	// ChoosePosition returns where to place the pending piece. The bool is
	// false when no piece is pending.
	ChoosePosition(g *core.Game) (core.Position, bool)
}

// Options are passed to a factory when an agent is created.
type Options struct {
	Depth  int   // search depth in sub-moves, 0 = agent default
	Seed   int64 // RNG seed for randomized agents
	Logger *log.Logger
}

// AgentInfo contains metadata about a registered agent.
type AgentInfo struct {
	ID    string
	Title string
}

// Factory creates a new agent.
type Factory func(opts Options) Agent

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an agent factory to the registry.
// Typically called from an init() function.
// Panics if an agent with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: agent %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f(Options{}).Name()
}

// List returns information about all registered agents, sorted by ID.
func List() []AgentInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]AgentInfo, 0, len(factories))
	for id := range factories {
		result = append(result, AgentInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new agent by its ID.
// Returns an error if the ID is not registered.
func Create(id string, opts Options) (Agent, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown agent %q", id)
	}

	return f(opts), nil
}

// Exists checks if an agent with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
