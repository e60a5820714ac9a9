// mazechase is a tile-based maze chase: steer pacman through a maze, eat every
// pickup and stay away from the patrolling ghosts.
//
// Usage:
//
//	mazechase play [map]      - Play a map in the terminal
//	mazechase gui [map]       - Play a map in a window
//	mazechase menu            - Pick maps from a menu
//	mazechase maps            - List available maps
//	mazechase history [map]   - Browse recorded runs
//	mazechase serve           - Start SSH server for remote play
//	mazechase config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: from config, 60)
//	--config <path>       - Use a specific config file
//	--db <path>           - Set run history path (default: ~/.mazechase/runs.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/maze"
	"github.com/vovakirdan/maze-chase/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - eat every pickup, dodge the ghosts",
	Long: `Maze Chase is a tile-based maze game. Steer pacman with the arrow keys
or WASD, collect every pickup and avoid the ghosts. Getting caught restarts
the map; Esc gives up.

Available commands:
  play     - Play a map in the terminal
  gui      - Play a map in a window
  menu     - Pick maps from a menu
  maps     - List available maps
  history  - Browse recorded runs
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  mazechase play
  mazechase play classic --fps 30
  mazechase gui classic
  mazechase maps --dir ./maps
  mazechase history classic
  mazechase serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Simulation.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger creates a logger writing to w at the configured level.
func newLogger(w io.Writer, cfg config.Config, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openStore opens the run history. Failures are logged and play continues
// without recording.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// resolveMap picks the map to play: a file given with --map-file, or a map
// ID looked up among the built-ins and the configured maps directory.
func resolveMap(cfg config.Config, args []string, mapFile string) (*maze.MapFile, error) {
	if mapFile != "" {
		return maze.LoadFile(mapFile)
	}
	id := maze.DefaultMap
	if len(args) > 0 {
		id = args[0]
	}
	dir, err := mapsDir(cfg, "")
	if err != nil {
		return nil, err
	}
	return maze.Find(id, dir)
}

// mapsDir returns the directory of extra map files, preferring override.
func mapsDir(cfg config.Config, override string) (string, error) {
	dir := cfg.Assets.MapsDir
	if override != "" {
		dir = override
	}
	if dir == "" {
		return "", nil
	}
	return config.ExpandPath(dir)
}

// buildOptions turns the controls and assets configuration into build options.
func buildOptions(cfg config.Config) maze.BuildOptions {
	return maze.BuildOptions{
		CancelKey:    cfg.CancelKey(),
		Keys:         cfg.Bindings(),
		PacmanAssets: cfg.Assets.Pacman,
	}
}

// playerName names the local player in the run history.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "local"
}

func exitOnError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", msg, err)
		os.Exit(1)
	}
}
