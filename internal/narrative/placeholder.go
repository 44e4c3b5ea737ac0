// Placeholder substitution: resolves {{pool}} vocabulary lookups and {key}
// computed details inside an authored template string. Degrades instead of
// failing — unknown pool keys become empty strings with a logged warning,
// and a terrain with no vocabulary at all returns the template untouched.
// See DESIGN.md Section 2.
package narrative

import (
	"log/slog"
	"regexp"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/entropy"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/vocab"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

// TranslateFunc is the message-catalog lookup collaborator. Every
// user-facing phrase outside the vocabulary tables routes through it.
type TranslateFunc func(key string, repl map[string]string) string

var (
	poolToken     = regexp.MustCompile(`\{\{(\w+)\}\}`)
	computedToken = regexp.MustCompile(`\{(\w+)\}`)
)

// FillTemplate substitutes both placeholder syntaxes in text for the given
// chunk. When the store has no vocabulary for the chunk's terrain the
// original text is returned unchanged. resolve localizes entity ids for
// display; nil falls back to the raw id.
func FillTemplate(src entropy.Source, store *vocab.Store, language, text string, chunk *world.Chunk, player *PlayerState, resolve NameResolver, translate TranslateFunc) string {
	biome, ok := store.Biome(language, chunk.Terrain)
	if !ok {
		return text
	}

	// Pass 1: {{keyword}} vocabulary-pool lookups.
	text = poolToken.ReplaceAllStringFunc(text, func(token string) string {
		keyword := poolToken.FindStringSubmatch(token)[1]
		pool, ok := biome.Pools.Lookup(keyword)
		if !ok {
			slog.Warn("unknown vocabulary pool keyword",
				"keyword", keyword, "terrain", chunk.Terrain, "language", language)
			return ""
		}
		return entropy.Pick(src, pool)
	})

	// Pass 2: fixed computed placeholders.
	text = computedToken.ReplaceAllStringFunc(text, func(token string) string {
		key := computedToken.FindStringSubmatch(token)[1]
		if value, ok := computedDetail(key, chunk, player, resolve, translate); ok {
			return value
		}
		return token // Not a computed placeholder; leave for the caller.
	})

	return text
}

// computedDetail resolves one computed placeholder by its decision table.
// The light/temperature bands mirror the mood analyzer's thresholds so
// detail phrasing never contradicts the derived mood.
func computedDetail(key string, chunk *world.Chunk, player *PlayerState, resolve NameResolver, translate TranslateFunc) (string, bool) {
	switch key {
	case "light_level_detail":
		switch {
		case chunk.LightLevel <= 10:
			return translate("detailLightDark", nil), true
		case chunk.LightLevel < 50:
			return translate("detailLightDim", nil), true
		default:
			return translate("detailLightNormal", nil), true
		}

	case "temp_detail":
		if chunk.Temperature == nil {
			return translate("detailTempMild", nil), true
		}
		t := *chunk.Temperature
		switch {
		case t <= 0:
			return translate("detailTempFreezing", nil), true
		case t < 15:
			return translate("detailTempCold", nil), true
		case t >= 35:
			return translate("detailTempHot", nil), true
		default:
			return translate("detailTempMild", nil), true
		}

	case "moisture_detail":
		switch {
		case chunk.Moisture <= 10:
			return translate("detailMoistureParched", nil), true
		case chunk.Moisture <= 30:
			return translate("detailMoistureDry", nil), true
		case chunk.Moisture >= 85:
			return translate("detailMoistureSoaked", nil), true
		default:
			return translate("detailMoistureNormal", nil), true
		}

	case "enemy_name":
		if chunk.Enemy == nil {
			return "", true
		}
		return chunk.Enemy.DisplayName(), true

	case "item_found":
		if len(chunk.Items) == 0 {
			return "", true
		}
		return displayName(chunk.Items[0].ID, resolve), true

	case "player_health_status":
		if player == nil {
			return "", true
		}
		switch {
		case player.HP <= 15:
			return translate("playerHealthCritical", nil), true
		case player.HP <= 40:
			return translate("playerHealthLow", nil), true
		case player.HP <= 75:
			return translate("playerHealthSteady", nil), true
		default:
			return translate("playerHealthStrong", nil), true
		}

	case "player_stamina_status":
		if player == nil {
			return "", true
		}
		switch {
		case player.Stamina <= 20:
			return translate("playerStaminaSpent", nil), true
		case player.Stamina <= 50:
			return translate("playerStaminaWinded", nil), true
		default:
			return translate("playerStaminaFresh", nil), true
		}
	}

	return "", false
}

// displayName localizes an entity id for prose; raw ids never surface when a
// resolver is wired.
func displayName(id string, resolve NameResolver) string {
	if resolve != nil {
		return resolve(id)
	}
	return id
}
