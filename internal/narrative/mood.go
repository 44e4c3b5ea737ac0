// Mood analysis: derives a chunk's qualitative mood tags from its numeric
// and categorical attributes. Pure and deterministic — templates are
// authored against these exact boundary values, so the thresholds here are
// business rules, not tunables.
// See DESIGN.md Section 2.
package narrative

import (
	"sort"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/vocab"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

// MoodSet is a deduplicated set of mood tags. Order is irrelevant.
type MoodSet map[vocab.MoodTag]bool

// Tags returns the set's members sorted for stable logging and tests.
func (m MoodSet) Tags() []vocab.MoodTag {
	out := make([]vocab.MoodTag, 0, len(m))
	for tag := range m {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (m MoodSet) add(tags ...vocab.MoodTag) {
	for _, t := range tags {
		m[t] = true
	}
}

// terrainMoods is the fixed tag contribution of each terrain category.
var terrainMoods = map[world.Terrain][]vocab.MoodTag{
	world.TerrainForest:     {vocab.MoodWild, vocab.MoodSerene},
	world.TerrainGrassland:  {vocab.MoodPeaceful, vocab.MoodVast},
	world.TerrainDesert:     {vocab.MoodArid, vocab.MoodDesolate, vocab.MoodHarsh},
	world.TerrainSwamp:      {vocab.MoodGloomy, vocab.MoodWet, vocab.MoodMysterious},
	world.TerrainMountain:   {vocab.MoodRugged, vocab.MoodElevated, vocab.MoodVast},
	world.TerrainCave:       {vocab.MoodDark, vocab.MoodMysterious, vocab.MoodForeboding, vocab.MoodConfined},
	world.TerrainJungle:     {vocab.MoodLush, vocab.MoodWild, vocab.MoodVibrant},
	world.TerrainVolcanic:   {vocab.MoodHot, vocab.MoodSmoldering, vocab.MoodDanger},
	world.TerrainTundra:     {vocab.MoodCold, vocab.MoodBarren, vocab.MoodHarsh},
	world.TerrainBeach:      {vocab.MoodSerene, vocab.MoodVast},
	world.TerrainMesa:       {vocab.MoodArid, vocab.MoodRugged, vocab.MoodVast},
	world.TerrainOcean:      {vocab.MoodVast, vocab.MoodMysterious},
	world.TerrainCity:       {vocab.MoodCivilized, vocab.MoodStructured},
	world.TerrainUnderwater: {vocab.MoodConfined, vocab.MoodMysterious, vocab.MoodEthereal},
}

// AnalyzeMood derives the mood set for a chunk. Each attribute group
// contributes independently; the union is deduplicated by the set type.
func AnalyzeMood(c *world.Chunk) MoodSet {
	m := make(MoodSet)

	// Danger level.
	switch {
	case c.DangerLevel >= 70:
		m.add(vocab.MoodDanger, vocab.MoodForeboding, vocab.MoodThreatening)
	case c.DangerLevel >= 40:
		m.add(vocab.MoodThreatening)
	}

	// Light level. Bands are mutually exclusive by construction.
	switch {
	case c.LightLevel <= 10:
		m.add(vocab.MoodDark, vocab.MoodGloomy, vocab.MoodMysterious)
	case c.LightLevel < 50:
		m.add(vocab.MoodMysterious, vocab.MoodGloomy)
	case c.LightLevel >= 80:
		m.add(vocab.MoodVibrant, vocab.MoodPeaceful)
	}

	// Moisture.
	switch {
	case c.Moisture >= 80:
		m.add(vocab.MoodLush, vocab.MoodWet, vocab.MoodVibrant)
	case c.Moisture <= 20:
		m.add(vocab.MoodArid, vocab.MoodDesolate)
	}

	// Predator presence.
	if c.PredatorPresence >= 60 {
		m.add(vocab.MoodDanger, vocab.MoodWild)
	}

	// Magic affinity.
	switch {
	case c.MagicAffinity >= 70:
		m.add(vocab.MoodMagic, vocab.MoodMysterious, vocab.MoodEthereal)
	case c.MagicAffinity >= 40:
		m.add(vocab.MoodMysterious)
	}

	// Human presence.
	switch {
	case c.HumanPresence >= 60:
		m.add(vocab.MoodCivilized, vocab.MoodHistoric)
	case c.HumanPresence > 0:
		m.add(vocab.MoodAbandoned)
	}

	// Temperature, when known. Unset is skipped, never treated as zero.
	if c.Temperature != nil {
		t := *c.Temperature
		switch {
		case t >= 40:
			m.add(vocab.MoodHot, vocab.MoodHarsh)
		case t <= 0:
			m.add(vocab.MoodCold, vocab.MoodHarsh)
		case t > 15 && t < 30:
			m.add(vocab.MoodPeaceful)
		}
	}

	// Terrain contribution.
	m.add(terrainMoods[world.NormalizeTerrain(string(c.Terrain))]...)

	return m
}
