package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

func TestLoadConfigAppliesFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	flagFPS, flagDBPath, flagLogLevel = 30, "/tmp/runs.db", "debug"
	defer func() { flagFPS, flagDBPath, flagLogLevel = 0, "", "" }()

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Simulation.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.Simulation.TickRate)
	}
	if cfg.Storage.DBPath != "/tmp/runs.db" {
		t.Errorf("DBPath = %q", cfg.Storage.DBPath)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()

	cfg.Log.Level = "warn"
	if got := newLogger(&buf, cfg, "test").GetLevel(); got != log.WarnLevel {
		t.Errorf("level = %v, expected warn", got)
	}

	cfg.Log.Level = "loud"
	if got := newLogger(&buf, cfg, "test").GetLevel(); got != log.InfoLevel {
		t.Errorf("unknown level = %v, expected info", got)
	}
	if !strings.Contains(buf.String(), "unknown log level") {
		t.Error("unknown level should be reported")
	}
}

func TestResolveMap(t *testing.T) {
	cfg := config.Default()

	m, err := resolveMap(cfg, nil, "")
	if err != nil {
		t.Fatalf("resolveMap() error = %v", err)
	}
	if m.ID != maze.DefaultMap {
		t.Errorf("default map = %q, expected %q", m.ID, maze.DefaultMap)
	}

	if _, err := resolveMap(cfg, []string{"nowhere"}, ""); err == nil {
		t.Error("resolveMap() should fail for an unknown map")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "mine.yaml")
	if err := os.WriteFile(path, []byte("id: mine\nlayout: '..'\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err = resolveMap(cfg, []string{"ignored"}, path)
	if err != nil {
		t.Fatalf("resolveMap() with a file error = %v", err)
	}
	if m.ID != "mine" {
		t.Errorf("map from file = %q, expected mine", m.ID)
	}

	cfg.Assets.MapsDir = dir
	m, err = resolveMap(cfg, []string{"mine"}, "")
	if err != nil || m.ID != "mine" {
		t.Errorf("resolveMap() from maps dir = %v, %v", m, err)
	}
}

func TestBuildOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Controls.Cancel = "q"

	opts := buildOptions(cfg)
	if opts.CancelKey != "q" {
		t.Errorf("CancelKey = %q, expected q", opts.CancelKey)
	}
	if len(opts.Keys.Up) == 0 || opts.PacmanAssets.Right == "" {
		t.Errorf("build options missing keys or assets: %+v", opts)
	}
}

func TestGlyphColors(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Glyphs = map[string]config.Glyph{
		"./res/red.jpg": {Rune: "M", Color: "#ff0000"},
		"bad.jpg":       {Rune: "M", Color: "red"},
	}

	colors := glyphColors(cfg)
	if got := colors["./res/red.jpg"]; got != core.ColorRed {
		t.Errorf("red ghost color = %v, expected red", got)
	}
	if _, ok := colors["bad.jpg"]; ok {
		t.Error("invalid glyph colors should be skipped")
	}
}
