// Template selection: weighted random draw over an eligible candidate list.
package narrative

import (
	"errors"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/entropy"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/vocab"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

// ErrNoCandidates is returned when SelectTemplate is handed an empty list.
// This is a contract violation by the caller — composers must run their own
// fallback chain before selecting — so it is the one loud failure in an
// otherwise never-throwing narration path.
var ErrNoCandidates = errors.New("narrative: select from empty template list")

// SelectTemplate draws one template from candidates, weighted by each
// template's effective weight. Returns ErrNoCandidates on an empty list.
func SelectTemplate(src entropy.Source, candidates []vocab.Template) (vocab.Template, error) {
	if len(candidates) == 0 {
		return vocab.Template{}, ErrNoCandidates
	}

	total := 0.0
	for _, t := range candidates {
		total += t.EffectiveWeight()
	}

	remainder := src.Float64() * total
	for _, t := range candidates {
		remainder -= t.EffectiveWeight()
		if remainder <= 0 {
			return t, nil
		}
	}
	// Rounding left nothing selected; the draw still has to land somewhere.
	return candidates[0], nil
}

// EligibleTemplates filters a biome's templates to those of the wanted types
// that match the mood set and pass their conditions. Templates with an
// unrecognised type are dropped.
func EligibleTemplates(templates []vocab.Template, types []vocab.TemplateType, moods MoodSet, chunk *world.Chunk, player *PlayerState, resolve NameResolver) []vocab.Template {
	wanted := make(map[vocab.TemplateType]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	var out []vocab.Template
	for _, t := range templates {
		if !t.Type.IsValid() || !wanted[t.Type] {
			continue
		}
		if !t.MatchesMood(moods) {
			continue
		}
		if !CheckCondition(t.Conditions, chunk, player, resolve) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// unconditionalTemplates returns the subset whose mood list is explicitly
// empty — the composer's fallback when mood filtering leaves nothing.
func unconditionalTemplates(templates []vocab.Template, types []vocab.TemplateType, chunk *world.Chunk, player *PlayerState, resolve NameResolver) []vocab.Template {
	wanted := make(map[vocab.TemplateType]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	var out []vocab.Template
	for _, t := range templates {
		if !t.Type.IsValid() || !wanted[t.Type] || len(t.Moods) > 0 {
			continue
		}
		if !CheckCondition(t.Conditions, chunk, player, resolve) {
			continue
		}
		out = append(out, t)
	}
	return out
}
