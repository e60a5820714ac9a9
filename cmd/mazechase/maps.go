package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/maze"
	"github.com/vovakirdan/maze-chase/internal/registry"
)

var flagMapsDir string

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List available maps",
	Long: `Shows the built-in maps and the map files found in the maps directory
(--dir, or assets.maps_dir in the config).`,
	Args: cobra.NoArgs,
	Run:  runMaps,
}

func init() {
	mapsCmd.Flags().StringVar(&flagMapsDir, "dir", "", "Directory of map YAML files")
}

type mapRow struct {
	id, title, source string
	m                 *maze.MapFile
}

func runMaps(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	exitOnError("loading config", err)

	rows, err := collectMaps(cfg, flagMapsDir)
	exitOnError("reading maps", err)

	if len(rows) == 0 {
		fmt.Println("No maps available.")
		return
	}

	fmt.Println("Available maps:")
	fmt.Println()

	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, r := range rows {
		maxIDLen = max(maxIDLen, len(r.id))
		maxTitleLen = max(maxTitleLen, len(r.title))
	}

	fmt.Printf("  %-*s  %-*s  %-7s  %-7s  %-6s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Size", "Pickups", "Ghosts", "Source")
	fmt.Printf("  %-*s  %-*s  %-7s  %-7s  %-6s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----", "-------", "------", "------")
	for _, r := range rows {
		desc := r.m.Description()
		size := fmt.Sprintf("%dx%d", desc.Width, desc.Height)
		fmt.Printf("  %-*s  %-*s  %-7s  %-7d  %-6d  %s\n",
			maxIDLen, r.id, maxTitleLen, r.title, size, len(desc.Pickups), len(r.m.Ghosts), r.source)
	}

	fmt.Println()
	fmt.Println("Run 'mazechase play <id>' to play a map.")
}

// collectMaps returns the built-in maps followed by the map files of the maps
// directory. Broken files are reported on stderr and skipped.
func collectMaps(cfg config.Config, dirOverride string) ([]mapRow, error) {
	var rows []mapRow
	for _, info := range registry.List() {
		m, err := maze.Open(info.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: built-in map %q: %v\n", info.ID, err)
			continue
		}
		rows = append(rows, mapRow{id: info.ID, title: info.Title, source: "built-in", m: m})
	}

	dir, err := mapsDir(cfg, dirOverride)
	if err != nil || dir == "" {
		return rows, err
	}
	files, skipped, err := maze.Loader{Root: dir}.LoadAll()
	if err != nil {
		return rows, err
	}
	for _, skipErr := range skipped {
		fmt.Fprintf(os.Stderr, "Warning: skipped %v\n", skipErr)
	}
	for _, m := range files {
		rows = append(rows, mapRow{id: m.ID, title: m.Name, source: dir, m: m})
	}
	return rows, nil
}
