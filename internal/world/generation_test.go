package world

import (
	"reflect"
	"testing"
)

func TestChunkAt_DeterministicForSeed(t *testing.T) {
	t.Parallel()

	cfg := DefaultGenConfig()
	cfg.Seed = 42

	a := NewGenerator(cfg).ChunkAt(13, -7, 720)
	b := NewGenerator(cfg).ChunkAt(13, -7, 720)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different chunks:\n%+v\n%+v", a, b)
	}
}

func TestChunkAt_AttributesInRange(t *testing.T) {
	t.Parallel()

	cfg := DefaultGenConfig()
	cfg.Seed = 7
	gen := NewGenerator(cfg)

	known := make(map[Terrain]bool, len(AllTerrains))
	for _, tr := range AllTerrains {
		known[tr] = true
	}

	for x := -20; x <= 20; x += 4 {
		for y := -20; y <= 20; y += 4 {
			c := gen.ChunkAt(x, y, 720)

			if !known[c.Terrain] {
				t.Fatalf("(%d,%d): unknown terrain %q", x, y, c.Terrain)
			}
			for name, v := range map[string]int{
				"vegetation": c.VegetationDensity,
				"moisture":   c.Moisture,
				"elevation":  c.Elevation,
				"danger":     c.DangerLevel,
				"magic":      c.MagicAffinity,
				"human":      c.HumanPresence,
				"predator":   c.PredatorPresence,
			} {
				if v < 0 || v > 100 {
					t.Errorf("(%d,%d): %s = %d out of range", x, y, name, v)
				}
			}
			if c.Temperature == nil || *c.Temperature < -10 || *c.Temperature > 45 {
				t.Errorf("(%d,%d): temperature out of range: %v", x, y, c.Temperature)
			}
			if c.SoilType == "" {
				t.Errorf("(%d,%d): empty soil type", x, y)
			}
			if c.GameTime != 720 {
				t.Errorf("(%d,%d): game time not carried", x, y)
			}
		}
	}
}

func TestLightFor_DayNightAndCaves(t *testing.T) {
	t.Parallel()

	if got := lightFor(TerrainCave, 720); got != 5 {
		t.Errorf("cave at noon: light %d, want 5", got)
	}
	if got := lightFor(TerrainForest, 720); got != 85 {
		t.Errorf("forest at noon: light %d, want 85", got)
	}
	if got := lightFor(TerrainForest, 0); got != 15 {
		t.Errorf("forest at midnight: light %d, want 15", got)
	}
}
