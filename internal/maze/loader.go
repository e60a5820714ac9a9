package maze

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/maze-chase/internal/registry"
)

// Loader finds map files in a directory.
type Loader struct {
	Root string
}

// LoadAll reads every *.yaml / *.yml file under Root, sorted by ID.
// Files that fail to parse are skipped and reported in the second result.
func (l Loader) LoadAll() ([]*MapFile, []error, error) {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, nil, fmt.Errorf("maze: read dir %s: %w", l.Root, err)
	}

	var (
		maps    []*MapFile
		skipped []error
	)
	for _, e := range entries {
		if e.IsDir() || !isMapFile(e.Name()) {
			continue
		}
		m, err := LoadFile(filepath.Join(l.Root, e.Name()))
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		maps = append(maps, m)
	}

	sort.Slice(maps, func(i, j int) bool {
		return maps[i].ID < maps[j].ID
	})
	return maps, skipped, nil
}

// LoadByID returns the map with the given ID from Root.
func (l Loader) LoadByID(id string) (*MapFile, error) {
	maps, _, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, m := range maps {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %q in %s", ErrUnknownMap, id, l.Root)
}

func isMapFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// Open returns a built-in map by ID.
func Open(id string) (*MapFile, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMap, id)
	}
	data, err := registry.Open(id)
	if err != nil {
		return nil, err
	}
	return ParseYAML(data)
}

// Find returns the built-in map with the given ID, falling back to the map
// files under dir when dir is set.
func Find(id, dir string) (*MapFile, error) {
	m, err := Open(id)
	if err == nil || !errors.Is(err, ErrUnknownMap) || dir == "" {
		return m, err
	}
	return Loader{Root: dir}.LoadByID(id)
}
