// Detail synthesis: builds a fallback sentence straight from chunk
// attributes when the template pool runs thin, keeping long descriptions
// varied without an exhaustive template library.
// See DESIGN.md Section 2.
package narrative

import (
	"strings"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/entropy"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/vocab"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

// condition axes the synthesizer can build a sentence around.
type synthAxis uint8

const (
	axisTemperature synthAxis = iota
	axisMoisture
	axisLight
)

const (
	neutralMidpoint = 50.0
	neutralTempC    = 20.0
	extremeBonus    = 20.0
)

// SynthesizeDetail composes one sentence about the chunk's most prominent
// environmental condition. It never fails: when no usable feature or pattern
// exists it degrades to a minimal fixed phrase.
func SynthesizeDetail(src entropy.Source, store *vocab.Store, language string, chunk *world.Chunk, resolve NameResolver, translate TranslateFunc) string {
	axis := mostProminentAxis(chunk)

	adjectives := store.KeywordVariations(language, bandFor(axis, chunk))
	feature := pickFeature(src, store, language, chunk, resolve)
	patterns := store.SentencePatterns(language)

	if len(adjectives) == 0 || feature == "" || len(patterns) == 0 {
		return minimalPhrase(chunk, translate)
	}

	sentence := entropy.Pick(src, patterns)
	sentence = strings.ReplaceAll(sentence, "{adjective}", entropy.Pick(src, adjectives))
	sentence = strings.ReplaceAll(sentence, "{feature}", feature)
	return sentence
}

// mostProminentAxis scores temperature, moisture, and light by their
// deviation from a neutral midpoint plus an extremity bonus, and returns the
// highest-scoring axis. Unknown temperature never wins.
func mostProminentAxis(chunk *world.Chunk) synthAxis {
	moisture := float64(chunk.Moisture)
	light := float64(chunk.LightLevel)

	moistScore := abs(moisture-neutralMidpoint) + extremeAt(moisture <= 10 || moisture >= 85)
	lightScore := abs(light-neutralMidpoint) + extremeAt(light <= 10 || light >= 90)

	tempScore := -1.0
	if chunk.Temperature != nil {
		t := *chunk.Temperature
		tempScore = abs(t-neutralTempC) + extremeAt(t <= 0 || t >= 35)
	}

	switch {
	case tempScore >= moistScore && tempScore >= lightScore:
		return axisTemperature
	case moistScore >= lightScore:
		return axisMoisture
	default:
		return axisLight
	}
}

// bandFor maps the chosen axis to a keyword-variation band.
func bandFor(axis synthAxis, chunk *world.Chunk) string {
	switch axis {
	case axisTemperature:
		if chunk.Temperature == nil {
			return "mild"
		}
		t := *chunk.Temperature
		switch {
		case t >= 30:
			return "hot"
		case t <= 10:
			return "cold"
		default:
			return "mild"
		}
	case axisMoisture:
		switch {
		case chunk.Moisture >= 70:
			return "high"
		case chunk.Moisture <= 30:
			return "low"
		default:
			return "medium"
		}
	default: // axisLight
		switch {
		case chunk.LightLevel < 30:
			return "dark"
		case chunk.LightLevel >= 70:
			return "bright"
		default:
			return "medium"
		}
	}
}

// pickFeature prefers the biome's feature vocabulary, then the chunk's enemy
// type, then its first item (localized through the resolver).
func pickFeature(src entropy.Source, store *vocab.Store, language string, chunk *world.Chunk, resolve NameResolver) string {
	if biome, ok := store.Biome(language, chunk.Terrain); ok && len(biome.Pools.Features) > 0 {
		return entropy.Pick(src, biome.Pools.Features)
	}
	if chunk.Enemy != nil {
		return chunk.Enemy.DisplayName()
	}
	if len(chunk.Items) > 0 {
		return displayName(chunk.Items[0].ID, resolve)
	}
	return ""
}

// minimalPhrase is the last-resort sentence, keyed off temperature and light
// extremes.
func minimalPhrase(chunk *world.Chunk, translate TranslateFunc) string {
	if chunk.Temperature != nil {
		switch t := *chunk.Temperature; {
		case t >= 35:
			return translate("sensoryHeat", nil)
		case t <= 0:
			return translate("sensoryCold", nil)
		}
	}
	if chunk.LightLevel <= 10 {
		return translate("sensoryDark", nil)
	}
	return translate("sensoryAmbient", nil)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func extremeAt(extreme bool) float64 {
	if extreme {
		return extremeBonus
	}
	return 0
}
