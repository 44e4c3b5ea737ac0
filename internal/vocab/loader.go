// YAML loading for modded vocabulary sets. Defaults are compiled in; a file
// loaded here replaces or extends the tables for one language without code
// changes.
package vocab

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

// File is the on-disk shape of a vocabulary override for one language.
type File struct {
	Language string              `yaml:"language"`
	Biomes   []Biome             `yaml:"biomes,omitempty"`
	Keywords map[string][]string `yaml:"keywords,omitempty"`
	Patterns []string            `yaml:"patterns,omitempty"`
}

var validMoods = func() map[MoodTag]bool {
	tags := []MoodTag{
		MoodDanger, MoodForeboding, MoodThreatening, MoodDark, MoodGloomy,
		MoodMysterious, MoodVibrant, MoodPeaceful, MoodLush, MoodWet,
		MoodArid, MoodDesolate, MoodWild, MoodMagic, MoodEthereal,
		MoodCivilized, MoodHistoric, MoodAbandoned, MoodHot, MoodCold,
		MoodHarsh, MoodRugged, MoodElevated, MoodConfined, MoodSmoldering,
		MoodSerene, MoodVast, MoodStructured, MoodBarren,
	}
	m := make(map[MoodTag]bool, len(tags))
	for _, t := range tags {
		m[t] = true
	}
	return m
}()

// Load reads the YAML vocabulary file at path and returns a validated File.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: open %q: %w", path, err)
	}
	defer f.Close()

	file, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("vocab: parse %q: %w", path, err)
	}
	return file, nil
}

// LoadFromReader decodes a YAML vocabulary override from r and validates it.
// Unknown fields are rejected so authoring typos fail at load time.
func LoadFromReader(r io.Reader) (*File, error) {
	file := &File{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(file); err != nil {
		return nil, fmt.Errorf("vocab: decode yaml: %w", err)
	}
	if err := Validate(file); err != nil {
		return nil, err
	}
	return file, nil
}

// Validate checks that file contains a coherent vocabulary set. It returns a
// joined error listing all problems found.
func Validate(file *File) error {
	var errs []error

	if file.Language == "" {
		errs = append(errs, errors.New("vocab: language is required"))
	}

	known := make(map[world.Terrain]bool, len(world.AllTerrains))
	for _, t := range world.AllTerrains {
		known[t] = true
	}

	for i, b := range file.Biomes {
		terrain := world.NormalizeTerrain(string(b.Terrain))
		if !known[terrain] {
			errs = append(errs, fmt.Errorf("vocab: biomes[%d]: unknown terrain %q", i, b.Terrain))
		}
		for j, tpl := range b.Templates {
			if tpl.Text == "" {
				errs = append(errs, fmt.Errorf("vocab: biomes[%d].templates[%d] (%s): empty text", i, j, tpl.ID))
			}
			if !tpl.Type.IsValid() {
				errs = append(errs, fmt.Errorf("vocab: biomes[%d].templates[%d] (%s): unknown type %q", i, j, tpl.ID, tpl.Type))
			}
			if tpl.Weight < 0 {
				errs = append(errs, fmt.Errorf("vocab: biomes[%d].templates[%d] (%s): negative weight", i, j, tpl.ID))
			}
			for _, m := range tpl.Moods {
				if !validMoods[m] {
					errs = append(errs, fmt.Errorf("vocab: biomes[%d].templates[%d] (%s): unknown mood %q", i, j, tpl.ID, m))
				}
			}
		}
	}

	return errors.Join(errs...)
}

// WithOverrides derives a new Store with file's tables applied on top of s.
// Biomes replace per terrain; keyword bands and patterns replace wholesale
// when present. The receiver is not modified.
func (s *Store) WithOverrides(file *File) *Store {
	next := &Store{
		biomes:   make(map[string]map[world.Terrain]*Biome, len(s.biomes)),
		keywords: make(map[string]map[string][]string, len(s.keywords)),
		patterns: make(map[string][]string, len(s.patterns)),
	}
	for code, table := range s.biomes {
		copied := make(map[world.Terrain]*Biome, len(table))
		for t, b := range table {
			copied[t] = b
		}
		next.biomes[code] = copied
	}
	for code, table := range s.keywords {
		next.keywords[code] = table
	}
	for code, p := range s.patterns {
		next.patterns[code] = p
	}

	table, ok := next.biomes[file.Language]
	if !ok {
		table = make(map[world.Terrain]*Biome)
		next.biomes[file.Language] = table
	}
	for i := range file.Biomes {
		b := file.Biomes[i]
		b.Terrain = world.NormalizeTerrain(string(b.Terrain))
		table[b.Terrain] = &b
	}
	if len(file.Keywords) > 0 {
		next.keywords[file.Language] = file.Keywords
	}
	if len(file.Patterns) > 0 {
		next.patterns[file.Language] = file.Patterns
	}
	return next
}
