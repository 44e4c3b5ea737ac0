// Condition evaluation: decides whether a template or item spawn entry is
// eligible for the current chunk and player snapshot.
// See DESIGN.md Section 2.
package narrative

import (
	"strings"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/vocab"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

// PlayerState is a read-only snapshot of the acting player's stats.
type PlayerState struct {
	HP      float64
	Stamina float64
}

// NameResolver resolves an entity id to its name in the reference language.
// Entity-presence conditions compare resolved names so eligibility does not
// depend on the session's display language.
type NameResolver func(id string) string

// CheckCondition reports whether cond passes for the chunk and optional
// player snapshot. A nil condition always passes. Player-stat conditions are
// skipped (not failed) when player is nil. All specified sub-conditions must
// pass.
func CheckCondition(cond *vocab.Condition, chunk *world.Chunk, player *PlayerState, resolve NameResolver) bool {
	if cond == nil {
		return true
	}

	if cond.TimeOfDay != "" {
		if string(world.TimeOfDay(chunk.GameTime)) != cond.TimeOfDay {
			return false
		}
	}

	if len(cond.SoilTypes) > 0 {
		match := false
		for _, soil := range cond.SoilTypes {
			if strings.EqualFold(soil, chunk.SoilType) {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}

	if player != nil {
		if cond.PlayerHealth != nil && !cond.PlayerHealth.Contains(player.HP) {
			return false
		}
		if cond.PlayerStamina != nil && !cond.PlayerStamina.Contains(player.Stamina) {
			return false
		}
	}

	if cond.RequiredEnemy != "" && !hasEntity(chunk, cond.RequiredEnemy, true, resolve) {
		return false
	}
	if cond.RequiredItem != "" && !hasEntity(chunk, cond.RequiredItem, false, resolve) {
		return false
	}

	// Generic numeric ranges. Names matching no chunk attribute are
	// silently ignored (no constraint).
	for name, r := range cond.Attributes {
		v, ok := chunk.NumericAttribute(name)
		if !ok {
			continue
		}
		if !r.Contains(v) {
			return false
		}
	}

	return true
}

// hasEntity tests presence of a named enemy or item in the chunk. The
// required name is compared against both the raw id and the reference-
// language resolved name, case-insensitively.
func hasEntity(chunk *world.Chunk, required string, enemy bool, resolve NameResolver) bool {
	matches := func(id string) bool {
		if strings.EqualFold(id, required) {
			return true
		}
		if resolve != nil {
			return strings.EqualFold(resolve(id), required)
		}
		return false
	}

	if enemy {
		return chunk.Enemy != nil && (matches(chunk.Enemy.Type) || matches(chunk.Enemy.DisplayName()))
	}
	for _, s := range chunk.Items {
		if matches(s.ID) {
			return true
		}
	}
	return false
}
