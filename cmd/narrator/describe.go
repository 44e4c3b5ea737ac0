package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/narrative"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

var (
	describeX      int
	describeY      int
	describeLength string
	describeHP     float64
	describeSta    float64
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Compose an ambient description for a world chunk",
	Long: `Generate the chunk at the given coordinates and compose its ambient
description: mood analysis, template selection, placeholder substitution, and
synthesized detail sentences when the template pool runs thin.

Examples:
  narrator describe --x 3 --y -7 --length long
  narrator describe --seed 42 --tick 1200 --lang vi`,
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().IntVar(&describeX, "x", 0, "chunk x coordinate")
	describeCmd.Flags().IntVar(&describeY, "y", 0, "chunk y coordinate")
	describeCmd.Flags().StringVar(&describeLength, "length", "medium", "narrative length: short, medium, long, detailed")
	describeCmd.Flags().Float64Var(&describeHP, "hp", 100, "player health for condition checks")
	describeCmd.Flags().Float64Var(&describeSta, "stamina", 100, "player stamina for condition checks")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.close()

	chunk := e.gen.ChunkAt(describeX, describeY, flagTick)
	player := &narrative.PlayerState{HP: describeHP, Stamina: describeSta}

	composer := narrative.NewComposer(e.store, e.resolveName)
	prose := composer.Describe(e.src, chunk, narrative.Length(describeLength), flagLang, e.translate, player)

	meta := fmt.Sprintf("%s · %s · light %d · danger %d",
		chunk.Terrain, world.ClockTime(flagTick), chunk.LightLevel, chunk.DangerLevel)
	printScene(fmt.Sprintf("(%d, %d)", describeX, describeY), meta, prose)

	e.record(chunk.Terrain, "ambient", prose)
	return nil
}
