package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// FileName is the configuration file looked up in the user and local directories.
const FileName = "mazechase.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.mazechase/mazechase.yaml -> ./configs/mazechase.yaml
// -> embedded default -> hardcoded default.
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	cfg := base()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if loaded, ok := tryFile(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryFile(filepath.Join("configs", FileName)); ok {
		return loaded, nil
	}

	return cfg, nil
}

// base decodes the embedded defaults, falling back to Default.
func base() Config {
	cfg := Default()
	var embedded Config
	if err := yaml.Unmarshal(defaultYAML, &embedded); err != nil {
		return cfg
	}
	if embedded.Validate() != nil {
		return cfg
	}
	return embedded
}

// tryFile loads path over the defaults. Unreadable or invalid files are skipped.
func tryFile(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg := base()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	if cfg.Validate() != nil {
		return Config{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazechase", filename)
}

// ExpandPath expands a leading "~" to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// GlyphTable converts the configured glyphs to runes and colors.
// Invalid entries are skipped; Validate reports them.
func (c Config) GlyphTable() map[string]GlyphCell {
	table := make(map[string]GlyphCell, len(c.Render.Glyphs))
	for asset, g := range c.Render.Glyphs {
		runes := []rune(g.Rune)
		if len(runes) != 1 {
			continue
		}
		color, err := core.ParseHex(g.Color)
		if err != nil {
			continue
		}
		table[asset] = GlyphCell{Rune: runes[0], Color: color}
	}
	return table
}

// GlyphCell is a decoded Glyph.
type GlyphCell struct {
	Rune  rune
	Color core.Color
}

// fromKeys converts key bindings back to names.
func fromKeys(keys []core.Key) []string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return names
}
