package narrative

import (
	"strings"
	"testing"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/entropy"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/lang"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/vocab"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

func testTranslate(t *testing.T) TranslateFunc {
	t.Helper()
	return TranslateFunc(lang.NewCatalog().Func("en"))
}

func forestChunk() *world.Chunk {
	return &world.Chunk{Terrain: world.TerrainForest, LightLevel: 60, Moisture: 50}
}

func TestFillTemplate_PoolSubstitution(t *testing.T) {
	t.Parallel()

	store := vocab.DefaultStore()
	got := FillTemplate(entropy.New(1), store, "en", "You walk beneath {{adjective}} trees.", forestChunk(), nil, nil, testTranslate(t))

	if strings.Contains(got, "{{") {
		t.Errorf("unresolved pool token in %q", got)
	}
	if got == "You walk beneath  trees." {
		t.Error("adjective pool produced an empty substitution")
	}
}

func TestFillTemplate_UnknownPoolKeywordIsEmpty(t *testing.T) {
	t.Parallel()

	store := vocab.DefaultStore()
	got := FillTemplate(entropy.New(1), store, "en", "A {{mineral}} vein.", forestChunk(), nil, nil, testTranslate(t))

	if got != "A  vein." {
		t.Errorf("got %q, want unknown keyword replaced with empty string", got)
	}
}

func TestFillTemplate_ComputedLightDetail(t *testing.T) {
	t.Parallel()

	store := vocab.DefaultStore()
	translate := testTranslate(t)

	chunk := forestChunk()
	chunk.LightLevel = 5
	got := FillTemplate(entropy.New(1), store, "en", "{light_level_detail}", chunk, nil, nil, translate)
	if want := translate("detailLightDark", nil); got != want {
		t.Errorf("light 5: got %q, want %q", got, want)
	}

	chunk.LightLevel = 30
	got = FillTemplate(entropy.New(1), store, "en", "{light_level_detail}", chunk, nil, nil, translate)
	if want := translate("detailLightDim", nil); got != want {
		t.Errorf("light 30: got %q, want %q", got, want)
	}
}

func TestFillTemplate_TemperatureNilIsMild(t *testing.T) {
	t.Parallel()

	store := vocab.DefaultStore()
	translate := testTranslate(t)

	got := FillTemplate(entropy.New(1), store, "en", "{temp_detail}", forestChunk(), nil, nil, translate)
	if want := translate("detailTempMild", nil); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFillTemplate_PlayerStatus(t *testing.T) {
	t.Parallel()

	store := vocab.DefaultStore()
	translate := testTranslate(t)
	player := &PlayerState{HP: 12, Stamina: 80}

	got := FillTemplate(entropy.New(1), store, "en", "{player_health_status}", forestChunk(), player, nil, translate)
	if want := translate("playerHealthCritical", nil); got != want {
		t.Errorf("hp 12: got %q, want %q", got, want)
	}

	// Without a player snapshot the placeholder resolves to nothing.
	got = FillTemplate(entropy.New(1), store, "en", "{player_health_status}", forestChunk(), nil, nil, translate)
	if got != "" {
		t.Errorf("nil player: got %q, want empty", got)
	}
}

func TestFillTemplate_ItemFoundUsesResolvedName(t *testing.T) {
	t.Parallel()

	store := vocab.DefaultStore()
	translate := testTranslate(t)
	chunk := forestChunk()
	chunk.Items = []world.ItemStack{{ID: "herb_bundle", Quantity: 1}}
	resolve := func(id string) string {
		if id == "herb_bundle" {
			return "medicinal herbs"
		}
		return id
	}

	got := FillTemplate(entropy.New(1), store, "en", "You spot {item_found}.", chunk, nil, resolve, translate)
	if got != "You spot medicinal herbs." {
		t.Errorf("got %q, want resolved display name", got)
	}
	if strings.Contains(got, "herb_bundle") {
		t.Errorf("raw item id surfaced in prose: %q", got)
	}

	// Without a resolver the raw id is the only name available.
	got = FillTemplate(entropy.New(1), store, "en", "{item_found}", chunk, nil, nil, translate)
	if got != "herb_bundle" {
		t.Errorf("nil resolver: got %q, want raw id fallback", got)
	}
}

func TestFillTemplate_UnknownComputedKeyLeftAlone(t *testing.T) {
	t.Parallel()

	store := vocab.DefaultStore()
	got := FillTemplate(entropy.New(1), store, "en", "{castle_name} looms.", forestChunk(), nil, nil, testTranslate(t))
	if got != "{castle_name} looms." {
		t.Errorf("got %q, want unknown computed token untouched", got)
	}
}

func TestFillTemplate_NoBiomeReturnsOriginal(t *testing.T) {
	t.Parallel()

	store := vocab.DefaultStore()
	chunk := &world.Chunk{Terrain: world.Terrain("void")}
	text := "A {{adjective}} nothing."
	if got := FillTemplate(entropy.New(1), store, "en", text, chunk, nil, nil, testTranslate(t)); got != text {
		t.Errorf("got %q, want original text for unknown terrain", got)
	}
}
