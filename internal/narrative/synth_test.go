package narrative

import (
	"strings"
	"testing"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/entropy"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/vocab"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

func TestSynthesizeDetail_NeverEmpty(t *testing.T) {
	t.Parallel()

	store := vocab.DefaultStore()
	translate := testTranslate(t)

	for _, terrain := range world.AllTerrains {
		chunk := &world.Chunk{Terrain: terrain, LightLevel: 60, Moisture: 50}
		got := SynthesizeDetail(entropy.New(5), store, "en", chunk, nil, translate)
		if strings.TrimSpace(got) == "" {
			t.Errorf("%s: empty synthesized detail", terrain)
		}
	}
}

func TestSynthesizeDetail_NoTemplateTokensRemain(t *testing.T) {
	t.Parallel()

	store := vocab.DefaultStore()
	got := SynthesizeDetail(entropy.New(2), store, "en", forestChunk(), nil, testTranslate(t))
	if strings.Contains(got, "{adjective}") || strings.Contains(got, "{feature}") {
		t.Errorf("unresolved pattern token in %q", got)
	}
}

func TestSynthesizeDetail_MinimalFallback(t *testing.T) {
	t.Parallel()

	store := vocab.DefaultStore()
	translate := testTranslate(t)

	// Unknown terrain has no biome vocabulary and no contents: the
	// synthesizer must still produce its last-resort phrase.
	chunk := &world.Chunk{Terrain: world.Terrain("void"), LightLevel: 5}
	got := SynthesizeDetail(entropy.New(1), store, "en", chunk, nil, translate)
	if want := translate("sensoryDark", nil); got != want {
		t.Errorf("got %q, want minimal dark phrase %q", got, want)
	}
}

func TestSynthesizeDetail_ItemFeatureUsesResolvedName(t *testing.T) {
	t.Parallel()

	store := vocab.DefaultStore()
	translate := testTranslate(t)

	// Unknown terrain has no feature vocabulary, so the chunk's item becomes
	// the feature. Its display name must come from the resolver, never the id.
	chunk := &world.Chunk{Terrain: world.Terrain("void"), LightLevel: 60, Moisture: 50}
	chunk.Items = []world.ItemStack{{ID: "crystal_shard", Quantity: 2}}
	resolve := func(id string) string {
		if id == "crystal_shard" {
			return "a glowing crystal shard"
		}
		return id
	}

	got := SynthesizeDetail(entropy.New(3), store, "en", chunk, resolve, translate)
	if !strings.Contains(got, "a glowing crystal shard") {
		t.Errorf("feature not resolved through the name resolver: %q", got)
	}
	if strings.Contains(got, "crystal_shard") {
		t.Errorf("raw item id surfaced in prose: %q", got)
	}
}

func TestSynthesizeDetail_Deterministic(t *testing.T) {
	t.Parallel()

	store := vocab.DefaultStore()
	translate := testTranslate(t)

	a := SynthesizeDetail(entropy.New(11), store, "en", forestChunk(), nil, translate)
	b := SynthesizeDetail(entropy.New(11), store, "en", forestChunk(), nil, translate)
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
}
