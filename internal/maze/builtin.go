package maze

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/maze-chase/internal/registry"
)

// DefaultMap is the map played when none is named.
const DefaultMap = "classic"

//go:embed maps/*.yaml
var builtinMaps embed.FS

func init() {
	files, err := fs.Glob(builtinMaps, "maps/*.yaml")
	if err != nil {
		panic(err)
	}
	for _, name := range files {
		data, err := builtinMaps.ReadFile(name)
		if err != nil {
			panic(err)
		}
		var head struct {
			ID   string `yaml:"id"`
			Name string `yaml:"name"`
		}
		if err := yaml.Unmarshal(data, &head); err != nil || head.ID == "" {
			panic(fmt.Sprintf("maze: bad built-in map %s: %v", name, err))
		}
		registry.Register(head.ID, head.Name, func() ([]byte, error) {
			return data, nil
		})
	}
}
