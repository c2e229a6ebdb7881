// Package worldgen builds playable worlds: a hand-authored demo sea
// chart and seeded procedural islands. Generators register themselves
// in init() functions, allowing the CLI and the explorer to discover
// and run them without hardcoded dependencies.
package worldgen

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/hextide/internal/hex"
	"github.com/vovakirdan/hextide/internal/world"
)

// Generator builds a world grid. Implementations must be deterministic
// for a given non-zero seed so saved worlds can be reproduced.
type Generator interface {
	// ID returns a unique identifier for this generator (e.g. "island").
	// Used for CLI flags and save records.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Generate builds a fresh world from the options and seed. A zero
	// seed means "pick one"; callers that need reproducibility must
	// pass an explicit seed.
	Generate(opts Options, seed int64) *world.Grid
}

// Options carries the tunables shared by all generators. Layout applies
// everywhere; the remaining fields steer terrain synthesis and are
// ignored by generators that do not synthesize.
type Options struct {
	Layout        hex.Layout
	Radius        int     // world radius in hexes
	SeaLevel      float64 // elevation threshold for open water (0.0-1.0)
	MountainLevel float64 // elevation threshold for mountains (0.0-1.0)
	Ports         int     // how many ports to place on the coast
}

// DefaultOptions returns the tunables the embedded configuration ships
// with.
func DefaultOptions() Options {
	return Options{
		Layout:        hex.DefaultLayout(),
		Radius:        12,
		SeaLevel:      0.32,
		MountainLevel: 0.74,
		Ports:         3,
	}
}

// Info contains metadata about a registered generator.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new generator instance.
type Factory func() Generator

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a generator factory to the registry. Typically called
// from an init() function. Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("worldgen: generator %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered generators, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a generator by its ID. Returns an error if the
// ID is not registered.
func Create(id string) (Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("worldgen: unknown generator %q", id)
	}

	return f(), nil
}

// Exists checks if a generator with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
