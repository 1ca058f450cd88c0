package modes

import (
	"fmt"
	"sort"
	"sync"
)

var (
	catalog = make(map[string]Mode)
	order   []string
	mu      sync.RWMutex
)

// Register adds a mode to the catalog. Called from init() in the catalog
// files. Panics on a duplicate ID or an invalid definition: both are
// programming errors that must surface at startup.
func Register(m Mode) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := catalog[m.ID]; exists {
		panic(fmt.Sprintf("modes: mode %q already registered", m.ID))
	}
	if err := Validate(m); err != nil {
		panic(fmt.Sprintf("modes: invalid mode %q: %v", m.ID, err))
	}

	catalog[m.ID] = m
	order = append(order, m.ID)
}

// Get returns a copy of the mode with the given ID.
func Get(id string) (Mode, error) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := catalog[id]
	if !ok {
		return Mode{}, fmt.Errorf("modes: unknown mode %q", id)
	}
	return m, nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := catalog[id]
	return ok
}

// List returns copies of all registered modes in registration order.
func List() []Mode {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Mode, 0, len(order))
	for _, id := range order {
		result = append(result, catalog[id])
	}
	return result
}

// IDs returns all registered mode IDs, sorted.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Retune replaces the numeric tuning of a registered mode. Used by the
// config layer at startup, before any run begins; the new tuning is
// validated like a fresh registration.
func Retune(id string, physics Physics, spawn Spawn, player Player) error {
	mu.Lock()
	defer mu.Unlock()

	m, ok := catalog[id]
	if !ok {
		return fmt.Errorf("modes: unknown mode %q", id)
	}

	m.Physics = physics
	m.Spawn = spawn
	m.Player = player
	if err := Validate(m); err != nil {
		return fmt.Errorf("modes: retune of %q rejected: %w", id, err)
	}

	catalog[id] = m
	return nil
}
