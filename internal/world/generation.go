// Chunk generation using layered simplex noise.
// Generates elevation, moisture, and temperature fields, then derives the
// terrain category and the environmental attributes the narrator consumes.
// The narrative core never calls this; it exists for the demo CLI and for
// end-to-end tests that need realistic chunks.
// See DESIGN.md Section 3.
package world

import (
	mathrand "math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds chunk generation parameters.
type GenConfig struct {
	Seed        int64   // Random seed (0 = random)
	SeaLevel    float64 // Elevation threshold for ocean (0.0–1.0)
	MountainLvl float64 // Elevation threshold for mountains (0.0–1.0)
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Seed:        0,
		SeaLevel:    0.25,
		MountainLvl: 0.72,
	}
}

// Generator derives chunks from world coordinates. Deterministic for a seed.
type Generator struct {
	cfg       GenConfig
	elevNoise opensimplex.Noise
	wetNoise  opensimplex.Noise
	tempNoise opensimplex.Noise
	spotNoise opensimplex.Noise
}

// NewGenerator creates a chunk generator from the given configuration.
func NewGenerator(cfg GenConfig) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = mathrand.Int63()
	}
	return &Generator{
		cfg:       cfg,
		elevNoise: opensimplex.NewNormalized(seed),
		wetNoise:  opensimplex.NewNormalized(seed + 1),
		tempNoise: opensimplex.NewNormalized(seed + 2),
		spotNoise: opensimplex.NewNormalized(seed + 3),
	}
}

// ChunkAt generates the chunk at world coordinates (x, y).
func (g *Generator) ChunkAt(x, y int, tick uint64) *Chunk {
	fx, fy := float64(x), float64(y)

	elev := octaveNoise(g.elevNoise, fx, fy, 4, 0.08, 0.5)
	wet := octaveNoise(g.wetNoise, fx, fy, 3, 0.06, 0.5)
	temp := octaveNoise(g.tempNoise, fx, fy, 3, 0.05, 0.5)
	spot := octaveNoise(g.spotNoise, fx, fy, 2, 0.11, 0.5)

	// Temperature decreases with elevation.
	temp = temp*0.8 + (1.0-elev)*0.2

	terrain := deriveTerrain(elev, wet, temp, g.cfg)

	tempC := temp*55 - 10 // Map 0..1 onto -10..45 °C
	wind := int(spot * 60)

	c := &Chunk{
		X:                 x,
		Y:                 y,
		Terrain:           terrain,
		VegetationDensity: clampAttr(int(wet*70 + (1-elev)*30)),
		Moisture:          clampAttr(int(wet * 100)),
		Elevation:         clampAttr(int(elev * 100)),
		LightLevel:        lightFor(terrain, tick),
		DangerLevel:       clampAttr(int(spot*60 + elev*20)),
		MagicAffinity:     clampAttr(int(spot * 100)),
		HumanPresence:     humanPresenceFor(terrain, spot),
		PredatorPresence:  clampAttr(int(spot*50 + wet*30)),
		Temperature:       &tempC,
		WindLevel:         &wind,
		SoilType:          soilFor(terrain, wet),
		GameTime:          tick,
	}
	return c
}

// deriveTerrain determines the terrain category from environmental fields.
func deriveTerrain(elev, wet, temp float64, cfg GenConfig) Terrain {
	if elev < cfg.SeaLevel {
		return TerrainOcean
	}
	if elev > cfg.MountainLvl {
		if temp > 0.8 {
			return TerrainVolcanic
		}
		return TerrainMountain
	}
	if temp < 0.25 {
		return TerrainTundra
	}
	if wet < 0.25 && temp > 0.5 {
		if elev > 0.55 {
			return TerrainMesa
		}
		return TerrainDesert
	}
	if wet > 0.7 && elev < 0.45 {
		if temp > 0.65 {
			return TerrainJungle
		}
		return TerrainSwamp
	}
	if elev < cfg.SeaLevel+0.05 {
		return TerrainBeach
	}
	if wet > 0.45 && elev > 0.45 {
		return TerrainForest
	}
	return TerrainGrassland
}

// lightFor derives ambient light from terrain and time of day. Caves are dark
// regardless of the hour.
func lightFor(terrain Terrain, tick uint64) int {
	if terrain == TerrainCave || terrain == TerrainUnderwater {
		return 5
	}
	if TimeOfDay(tick) == PhaseNight {
		return 15
	}
	return 85
}

func humanPresenceFor(terrain Terrain, spot float64) int {
	if terrain == TerrainCity {
		return 90
	}
	if spot > 0.85 {
		return clampAttr(int((spot - 0.85) * 300)) // Scattered ruins and camps
	}
	return 0
}

func soilFor(terrain Terrain, wet float64) string {
	switch terrain {
	case TerrainDesert, TerrainMesa, TerrainBeach:
		return "sandy"
	case TerrainSwamp, TerrainJungle:
		return "peaty"
	case TerrainMountain, TerrainCave, TerrainVolcanic:
		return "rocky"
	default:
		if wet > 0.6 {
			return "loamy"
		}
		return "clay"
	}
}

func clampAttr(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
