// Package registry provides a global registry for arena levels.
// Levels register themselves in init() functions, allowing the simulation
// and front-ends to discover them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/ortho-arena/internal/core"
)

// ErrUnknownLevel is returned by Create for unregistered ids.
var ErrUnknownLevel = errors.New("registry: unknown level")

// Level is authored arena content.
type Level interface {
	// ID returns a unique identifier (e.g., "range", "warehouse").
	// Used for CLI commands and run records.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description is a one-line summary for menus.
	Description() string

	// Layout returns the floor, obstacles and spawn markers.
	Layout() core.Layout
}

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a level.
type Factory func() Level

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]LevelInfo)
	mu        sync.RWMutex
)

// Register adds a level factory to the registry.
// Typically called from a level's init() function.
// Panics if a level with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}

	factories[id] = f

	l := f()
	infos[id] = LevelInfo{ID: id, Title: l.Title(), Description: l.Description()}
}

// List returns information about all registered levels, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a level by its ID.
func Create(id string) (Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownLevel, id)
	}

	return f(), nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
