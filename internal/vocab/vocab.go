// Package vocab holds the narrator's static configuration: per-biome word
// pools, narrative templates with their eligibility rules, keyword-variation
// tables, and sentence patterns, all keyed by language. A Store is built once
// at startup (compiled-in defaults, optionally overridden from YAML) and is
// immutable afterwards, so it is safe to share across game sessions.
// See DESIGN.md Section 2.
package vocab

import (
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

// MoodTag is a qualitative label summarizing a chunk's atmosphere. Templates
// are authored against these tags; the analyzer derives them from attributes.
type MoodTag string

const (
	MoodDanger      MoodTag = "danger"
	MoodForeboding  MoodTag = "foreboding"
	MoodThreatening MoodTag = "threatening"
	MoodDark        MoodTag = "dark"
	MoodGloomy      MoodTag = "gloomy"
	MoodMysterious  MoodTag = "mysterious"
	MoodVibrant     MoodTag = "vibrant"
	MoodPeaceful    MoodTag = "peaceful"
	MoodLush        MoodTag = "lush"
	MoodWet         MoodTag = "wet"
	MoodArid        MoodTag = "arid"
	MoodDesolate    MoodTag = "desolate"
	MoodWild        MoodTag = "wild"
	MoodMagic       MoodTag = "magic"
	MoodEthereal    MoodTag = "ethereal"
	MoodCivilized   MoodTag = "civilized"
	MoodHistoric    MoodTag = "historic"
	MoodAbandoned   MoodTag = "abandoned"
	MoodHot         MoodTag = "hot"
	MoodCold        MoodTag = "cold"
	MoodHarsh       MoodTag = "harsh"
	MoodRugged      MoodTag = "rugged"
	MoodElevated    MoodTag = "elevated"
	MoodConfined    MoodTag = "confined"
	MoodSmoldering  MoodTag = "smoldering"
	MoodSerene      MoodTag = "serene"
	MoodVast        MoodTag = "vast"
	MoodStructured  MoodTag = "structured"
	MoodBarren      MoodTag = "barren"
)

// TemplateType classifies a narrative template's role in composition.
type TemplateType string

const (
	TypeOpening           TemplateType = "opening"
	TypeEnvironmentDetail TemplateType = "environment_detail"
	TypeSensoryDetail     TemplateType = "sensory_detail"
	TypeEntityReport      TemplateType = "entity_report"
	TypeClosing           TemplateType = "closing"
)

// IsValid reports whether t is a recognised template type.
func (t TemplateType) IsValid() bool {
	switch t {
	case TypeOpening, TypeEnvironmentDetail, TypeSensoryDetail, TypeEntityReport, TypeClosing:
		return true
	}
	return false
}

// Range is an inclusive numeric interval. A nil bound is unconstrained.
type Range struct {
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
}

// Contains reports whether v falls within the range.
func (r Range) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// Condition is a structured eligibility predicate attached to a template or
// an item spawn entry. All specified fields must pass (logical AND); zero
// fields impose no constraint. Attribute names that match no chunk field are
// silently ignored.
type Condition struct {
	TimeOfDay     string           `yaml:"time_of_day,omitempty"` // "day" or "night"
	SoilTypes     []string         `yaml:"soil_types,omitempty"`  // Membership test
	PlayerHealth  *Range           `yaml:"player_health,omitempty"`
	PlayerStamina *Range           `yaml:"player_stamina,omitempty"`
	RequiredEnemy string           `yaml:"required_enemy,omitempty"`
	RequiredItem  string           `yaml:"required_item,omitempty"`
	Attributes    map[string]Range `yaml:"attributes,omitempty"` // Named chunk numeric ranges
}

// DefaultWeight is used when a template declares no selection weight.
const DefaultWeight = 0.5

// Template is an authored, parameterized sentence fragment. Text may contain
// two placeholder syntaxes: {{pool}} for vocabulary-pool lookups and {key}
// for computed substitutions.
type Template struct {
	ID         string       `yaml:"id"` // Diagnostics only, not uniqueness-enforced
	Type       TemplateType `yaml:"type"`
	Moods      []MoodTag    `yaml:"moods,omitempty"` // Empty = matches any mood
	Length     string       `yaml:"length,omitempty"` // Advisory, not authoritative
	Conditions *Condition   `yaml:"conditions,omitempty"`
	Weight     float64      `yaml:"weight,omitempty"` // DefaultWeight when 0
	Text       string       `yaml:"text"`
}

// EffectiveWeight returns the template's selection weight, applying the
// default when unset.
func (t Template) EffectiveWeight() float64 {
	if t.Weight > 0 {
		return t.Weight
	}
	return DefaultWeight
}

// MatchesMood reports whether the template is eligible for the given mood
// set: an empty mood list matches everything, otherwise at least one tag
// must overlap.
func (t Template) MatchesMood(moods map[MoodTag]bool) bool {
	if len(t.Moods) == 0 {
		return true
	}
	for _, m := range t.Moods {
		if moods[m] {
			return true
		}
	}
	return false
}

// Pools holds a biome's word pools. The placeholder filler searches them in
// declaration order: adjectives, features, smells, sounds, sky.
type Pools struct {
	Adjectives []string `yaml:"adjectives,omitempty"`
	Features   []string `yaml:"features,omitempty"`
	Smells     []string `yaml:"smells,omitempty"`
	Sounds     []string `yaml:"sounds,omitempty"`
	Sky        []string `yaml:"sky,omitempty"`
}

// Lookup returns the pool matching the keyword, honoring the priority order.
func (p Pools) Lookup(keyword string) ([]string, bool) {
	switch keyword {
	case "adjectives", "adjective":
		return p.Adjectives, len(p.Adjectives) > 0
	case "features", "feature":
		return p.Features, len(p.Features) > 0
	case "smells", "smell":
		return p.Smells, len(p.Smells) > 0
	case "sounds", "sound":
		return p.Sounds, len(p.Sounds) > 0
	case "sky":
		return p.Sky, len(p.Sky) > 0
	}
	return nil, false
}

// Biome groups everything authored for one terrain in one language.
type Biome struct {
	Terrain   world.Terrain `yaml:"terrain"`
	Icon      string        `yaml:"icon,omitempty"` // Cosmetic, ignored by the narrator
	Templates []Template    `yaml:"templates,omitempty"`
	Pools     Pools         `yaml:"pools"`
}

// Store is the immutable vocabulary configuration injected into the narrator.
type Store struct {
	biomes   map[string]map[world.Terrain]*Biome
	keywords map[string]map[string][]string // language → band → adjectives
	patterns map[string][]string            // language → sentence patterns
}

// DefaultStore returns the compiled-in vocabulary (en and vi tables).
func DefaultStore() *Store {
	return &Store{
		biomes: map[string]map[world.Terrain]*Biome{
			"en": biomesEN,
			"vi": biomesVI,
		},
		keywords: map[string]map[string][]string{
			"en": keywordVariationsEN,
			"vi": keywordVariationsVI,
		},
		patterns: map[string][]string{
			"en": sentencePatternsEN,
			"vi": sentencePatternsVI,
		},
	}
}

// Biome returns the authored data for a terrain in the given language. The
// terrain key is normalized first; a language with no entry falls back to
// English. The second return is false when no biome exists in any language.
func (s *Store) Biome(language string, terrain world.Terrain) (*Biome, bool) {
	key := world.NormalizeTerrain(string(terrain))
	if table, ok := s.biomes[language]; ok {
		if b, ok := table[key]; ok {
			return b, true
		}
	}
	if b, ok := s.biomes["en"][key]; ok {
		return b, true
	}
	return nil, false
}

// KeywordVariations returns the descriptive adjectives for a condition band
// ("hot", "cold", "mild", "high", "medium", "low", "dark", "bright").
func (s *Store) KeywordVariations(language, band string) []string {
	if table, ok := s.keywords[language]; ok {
		if words, ok := table[band]; ok && len(words) > 0 {
			return words
		}
	}
	return s.keywords["en"][band]
}

// SentencePatterns returns the synthesizer's sentence patterns for a
// language. Patterns interpolate {adjective} and {feature}.
func (s *Store) SentencePatterns(language string) []string {
	if p, ok := s.patterns[language]; ok && len(p) > 0 {
		return p
	}
	return s.patterns["en"]
}

// Languages lists the language codes the store carries biome data for.
func (s *Store) Languages() []string {
	out := make([]string, 0, len(s.biomes))
	for code := range s.biomes {
		out = append(out, code)
	}
	return out
}
