// Package registry provides a global catalog of built-in maps.
// Map packages register themselves in init() functions, allowing the CLI
// and the SSH server to discover maps without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// MapInfo contains metadata about a registered map.
type MapInfo struct {
	ID    string
	Title string
}

// Source returns the raw map description (YAML) of a registered map.
type Source func() ([]byte, error)

type entry struct {
	title string
	src   Source
}

var (
	maps = make(map[string]entry)
	mu   sync.RWMutex
)

// Register adds a map source to the catalog.
// Typically called from an init() function.
// Panics if a map with the same ID is already registered.
func Register(id, title string, src Source) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := maps[id]; exists {
		panic(fmt.Sprintf("registry: map %q already registered", id))
	}

	maps[id] = entry{title: title, src: src}
}

// List returns information about all registered maps, sorted by ID.
func List() []MapInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]MapInfo, 0, len(maps))
	for id, e := range maps {
		result = append(result, MapInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Open returns the description of a map by its ID.
// Returns an error if the map ID is not registered.
func Open(id string) ([]byte, error) {
	mu.RLock()
	e, ok := maps[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown map %q", id)
	}

	data, err := e.src()
	if err != nil {
		return nil, fmt.Errorf("registry: open map %q: %w", id, err)
	}
	return data, nil
}

// Exists checks if a map with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := maps[id]
	return ok
}
