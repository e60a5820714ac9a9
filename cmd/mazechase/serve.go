package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/maze"
	"github.com/vovakirdan/maze-chase/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the maze SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own map; the map can be named as the SSH
command. Runs are recorded per-server under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mazechase/host_key

Examples:
  mazechase serve                           # Listen on :23234 with auto-generated key
  mazechase serve --ssh :2222               # Listen on port 2222
  mazechase serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh -t localhost -p 23234
  ssh -t localhost -p 23234 classic`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config, :23234)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config, 30m)")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	exitOnError("loading config", err)

	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.SSH.IdleTimeout = flagIdleTimeout
	}

	logger := newLogger(os.Stderr, cfg, "mazechase-ssh")

	hostKey, err := config.ExpandPath(cfg.SSH.HostKeyPath)
	exitOnError("resolving host key path", err)
	dir, err := mapsDir(cfg, "")
	exitOnError("resolving maps directory", err)

	play := tui.PlayOptions{
		Build:    buildOptions(cfg),
		TickRate: cfg.Simulation.TickRate,
		Render:   tui.RenderOptionsFrom(cfg),
		Logger:   logger,
	}
	store := openStore(cfg, logger)
	if store != nil {
		play.Store = store
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: hostKey,
		IdleTimeout: cfg.SSH.IdleTimeout,
		Play:        play,
		Maps: func(id string) (*maze.MapFile, error) {
			return maze.Find(id, dir)
		},
	}, logger)
	exitOnError("creating server", err)

	fmt.Printf("Starting maze SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
