package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/entropy"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/items"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/journal"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/lang"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/vocab"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

var (
	flagLang    string
	flagSeed    int64
	flagVocab   string
	flagJournal string
	flagTick    uint64
)

var rootCmd = &cobra.Command{
	Use:   "narrator",
	Short: "Offline narrative generator for a procedural survival world",
	Long: `Narrator composes ambient scene descriptions, action narration, and
search-discovery results for world chunks, fully offline and deterministic
for a given seed.`,
}

// Execute runs the root command.
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", envOr("NARRATOR_LANG", lang.Default), "narration language (en, vi)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = non-deterministic)")
	rootCmd.PersistentFlags().StringVar(&flagVocab, "vocab", os.Getenv("NARRATOR_VOCAB"), "YAML vocabulary overrides file")
	rootCmd.PersistentFlags().StringVar(&flagJournal, "journal", os.Getenv("NARRATOR_JOURNAL"), "journal database path (empty = no journal)")
	rootCmd.PersistentFlags().Uint64Var(&flagTick, "tick", 480, "world time in ticks (1440 per day)")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// engine bundles the collaborators every subcommand needs.
type engine struct {
	src      entropy.Source
	store    *vocab.Store
	catalog  *lang.Catalog
	registry *items.Registry
	gen      *world.Generator
	journal  *journal.Journal // Nil when journaling is off
}

func newEngine() (*engine, error) {
	store := vocab.DefaultStore()
	if flagVocab != "" {
		file, err := vocab.Load(flagVocab)
		if err != nil {
			return nil, fmt.Errorf("load vocabulary overrides: %w", err)
		}
		store = store.WithOverrides(file)
		slog.Info("vocabulary overrides loaded", "path", flagVocab, "language", file.Language)
	}

	src := entropy.Ambient()
	if flagSeed != 0 {
		src = entropy.New(flagSeed)
	}

	cfg := world.DefaultGenConfig()
	cfg.Seed = flagSeed

	e := &engine{
		src:      src,
		store:    store,
		catalog:  lang.NewCatalog(),
		registry: items.DefaultRegistry(),
		gen:      world.NewGenerator(cfg),
	}

	if flagJournal != "" {
		j, err := journal.Open(flagJournal)
		if err != nil {
			return nil, err
		}
		e.journal = j
	}

	return e, nil
}

func (e *engine) close() {
	if e.journal != nil {
		e.journal.Close()
	}
}

func (e *engine) translate(key string, repl map[string]string) string {
	return e.catalog.Translate(flagLang, key, repl)
}

// record appends to the journal when one is configured.
func (e *engine) record(terrain world.Terrain, kind, text string) {
	if e.journal == nil {
		return
	}
	if _, err := e.journal.Append(flagLang, string(terrain), kind, text); err != nil {
		slog.Warn("journal append failed", "error", err)
	}
}

func (e *engine) resolveName(id string) string {
	if def, ok := e.registry.Get(id); ok {
		return def.Name.Resolve(flagLang)
	}
	return id
}

// Shared output styles.
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BD93F9")).
			Bold(true)
	proseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E9E9F4")).
			Width(76)
	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))
	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50FA7B")).
			Bold(true)
)

func printScene(title, meta, prose string) {
	fmt.Println(headerStyle.Render(title))
	if meta != "" {
		fmt.Println(metaStyle.Render(meta))
	}
	fmt.Println(proseStyle.Render(prose))
}
