// Ambient description composition: the entry point that turns a chunk into
// a paragraph of prose, budgeted by the requested narrative length.
// See DESIGN.md Section 2.
package narrative

import (
	"strings"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/entropy"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/vocab"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

// Length is the requested narrative length tier.
type Length string

const (
	LengthShort    Length = "short"
	LengthMedium   Length = "medium"
	LengthLong     Length = "long"
	LengthDetailed Length = "detailed"
)

// sentenceBudget returns the inclusive sentence-count range for a tier.
func sentenceBudget(l Length) (min, max int) {
	switch l {
	case LengthShort:
		return 1, 2
	case LengthMedium:
		return 2, 4
	case LengthLong, LengthDetailed:
		return 4, 7
	default:
		return 2, 4
	}
}

// synthesizer interleave rules: fall back to synthesized sentences when the
// local detail pool is sparse, and mix some in regardless for variety.
const (
	sparseDetailPool = 3
	synthChance      = 0.4
)

// Composer builds ambient chunk descriptions. Construct once per vocabulary
// set; safe for concurrent use when each call gets its own chunk snapshot
// and Source.
type Composer struct {
	store   *vocab.Store
	resolve NameResolver
}

// NewComposer creates a Composer over an immutable vocabulary store.
// resolve may be nil when entity conditions are authored against raw ids.
func NewComposer(store *vocab.Store, resolve NameResolver) *Composer {
	return &Composer{store: store, resolve: resolve}
}

// Describe composes the ambient description for a chunk. It never returns an
// error: missing vocabulary degrades to the chunk's stored description, then
// to a generic fallback phrase.
func (c *Composer) Describe(src entropy.Source, chunk *world.Chunk, length Length, language string, translate TranslateFunc, player *PlayerState) string {
	biome, ok := c.store.Biome(language, chunk.Terrain)
	if !ok {
		return c.rawFallback(chunk, translate)
	}

	moods := AnalyzeMood(chunk)

	openings := EligibleTemplates(biome.Templates, []vocab.TemplateType{vocab.TypeOpening}, moods, chunk, player, c.resolve)
	if len(openings) == 0 {
		openings = unconditionalTemplates(biome.Templates, []vocab.TemplateType{vocab.TypeOpening}, chunk, player, c.resolve)
	}

	detailTypes := []vocab.TemplateType{vocab.TypeEnvironmentDetail, vocab.TypeSensoryDetail}
	details := EligibleTemplates(biome.Templates, detailTypes, moods, chunk, player, c.resolve)
	if len(details) == 0 {
		details = unconditionalTemplates(biome.Templates, detailTypes, chunk, player, c.resolve)
	}

	if len(openings) == 0 && len(details) == 0 {
		return c.rawFallback(chunk, translate)
	}

	minSentences, maxSentences := sentenceBudget(length)
	target := minSentences + src.Intn(maxSentences-minSentences+1)

	var sentences []string

	// At most one opening, counted toward the target.
	if len(openings) > 0 {
		if tpl, err := SelectTemplate(src, openings); err == nil {
			sentences = appendSentence(sentences, FillTemplate(src, c.store, language, tpl.Text, chunk, player, c.resolve, translate))
		}
	}

	// One entity report when something is present to report on.
	if chunk.Enemy != nil && len(sentences) < target {
		reports := EligibleTemplates(biome.Templates, []vocab.TemplateType{vocab.TypeEntityReport}, moods, chunk, player, c.resolve)
		if len(reports) > 0 {
			if tpl, err := SelectTemplate(src, reports); err == nil {
				sentences = appendSentence(sentences, FillTemplate(src, c.store, language, tpl.Text, chunk, player, c.resolve, translate))
			}
		}
	}

	// Detail slots: consume templates without reuse, interleaving
	// synthesized sentences per the sparsity/probability rule.
	for len(sentences) < target {
		useSynth := len(details) < sparseDetailPool || src.Float64() < synthChance
		if useSynth {
			// The synthesizer never yields an empty sentence, so the
			// loop always terminates once the template pool drains.
			sentences = appendSentence(sentences, SynthesizeDetail(src, c.store, language, chunk, c.resolve, translate))
			continue
		}

		tpl, err := SelectTemplate(src, details)
		if err != nil {
			break // Unreachable given the pool check above; stay silent.
		}
		details = removeTemplate(details, tpl.ID, tpl.Text)
		sentences = appendSentence(sentences, FillTemplate(src, c.store, language, tpl.Text, chunk, player, c.resolve, translate))
	}

	return SmartJoin(sentences, length)
}

// appendSentence adds s to the narration only when it carries text, so a
// template whose placeholders all collapsed to nothing never counts toward
// the sentence target.
func appendSentence(sentences []string, s string) []string {
	if strings.TrimSpace(s) == "" {
		return sentences
	}
	return append(sentences, s)
}

func (c *Composer) rawFallback(chunk *world.Chunk, translate TranslateFunc) string {
	if chunk.Description != "" {
		return chunk.Description
	}
	return translate("narrativeGeneric", nil)
}

// removeTemplate drops the first template matching id (falling back to text
// for templates authored without ids) so it is not reused within one call.
func removeTemplate(pool []vocab.Template, id, text string) []vocab.Template {
	for i, t := range pool {
		if (id != "" && t.ID == id) || (id == "" && t.Text == text) {
			return append(pool[:i:i], pool[i+1:]...)
		}
	}
	return pool
}
