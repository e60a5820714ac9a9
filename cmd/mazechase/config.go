package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/config"
)

var flagWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the default configuration YAML. With --write it is saved to
~/.mazechase/mazechase.yaml (an existing file is kept).`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagWrite, "write", false, "Write the defaults to ~/.mazechase/mazechase.yaml")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagWrite {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	path, err := config.ExpandPath(filepath.Join("~", ".mazechase", config.FileName))
	exitOnError("resolving config path", err)

	if _, statErr := os.Stat(path); statErr == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", path)
		os.Exit(1)
	}
	exitOnError("creating config directory", os.MkdirAll(filepath.Dir(path), 0o755))
	exitOnError("writing config", os.WriteFile(path, config.DefaultYAML(), 0o644))
	fmt.Printf("Wrote %s\n", path)
}
