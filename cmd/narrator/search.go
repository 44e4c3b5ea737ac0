package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/explore"
)

var (
	searchX          int
	searchY          int
	searchMultiplier float64
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Resolve a search action on a world chunk",
	Long: `Generate the chunk at the given coordinates and roll its discovery
pool: biome items gated by their conditions, plus a few rare off-biome finds.

Examples:
  narrator search --x 3 --y -7 --seed 42
  narrator search --multiplier 2.5`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchX, "x", 0, "chunk x coordinate")
	searchCmd.Flags().IntVar(&searchY, "y", 0, "chunk y coordinate")
	searchCmd.Flags().Float64Var(&searchMultiplier, "multiplier", 1, "spawn multiplier before softcap")
}

func runSearch(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.close()

	chunk := e.gen.ChunkAt(searchX, searchY, flagTick)

	resolver := explore.NewResolver(e.registry, nil, e.resolveName)
	result := resolver.Search(e.src, chunk, "", flagLang, e.translate,
		explore.DefaultRoller(e.src), searchMultiplier)

	printScene(fmt.Sprintf("search (%d, %d)", searchX, searchY), string(chunk.Terrain), result.Narrative)
	if result.Toast != nil {
		fmt.Println(toastStyle.Render(fmt.Sprintf("%s %s ×%d",
			result.Toast.Emoji, result.Toast.Title, result.Toast.Quantity)))
	}

	e.record(chunk.Terrain, "search", result.Narrative)
	return nil
}
