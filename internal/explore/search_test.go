package explore

import (
	"math"
	"strings"
	"testing"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/entropy"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/items"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/lang"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

// fixedSource returns the same value from every Float64 call, so tests can
// force every roll to hit or miss.
type fixedSource struct{ f float64 }

func (s fixedSource) Float64() float64                   { return s.f }
func (s fixedSource) Intn(n int) int                     { return 0 }
func (s fixedSource) Shuffle(n int, swap func(int, int)) {}

var _ entropy.Source = fixedSource{}

func testTranslate() func(key string, repl map[string]string) string {
	return lang.NewCatalog().Func("en")
}

func searchChunk() *world.Chunk {
	return &world.Chunk{
		Terrain:        world.TerrainForest,
		Moisture:       50,
		LightLevel:     60,
		PendingActions: []string{"search-1", "other"},
	}
}

func TestSearch_FindsBiomeItem(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(items.DefaultRegistry(), nil, nil)
	chunk := searchChunk()

	result := resolver.Search(fixedSource{0}, chunk, "search-1", "en", testTranslate(),
		DefaultRoller(fixedSource{0}), 1)

	if result.Toast == nil {
		t.Fatal("guaranteed roll found nothing")
	}
	if result.Toast.ItemID != "berries" {
		t.Errorf("found %q, want the first natural candidate berries", result.Toast.ItemID)
	}
	if result.Toast.Quantity != 2 {
		t.Errorf("quantity = %d, want the range minimum 2", result.Toast.Quantity)
	}
	if !result.Chunk.HasItem("berries") {
		t.Error("new chunk does not carry the found item")
	}
	if !strings.Contains(result.Narrative, "wild berries") {
		t.Errorf("narrative does not name the find: %q", result.Narrative)
	}

	// The input chunk stays untouched.
	if chunk.HasItem("berries") {
		t.Error("input chunk was mutated")
	}
	if len(chunk.PendingActions) != 2 {
		t.Error("input pending actions were mutated")
	}
}

func TestSearch_RemovesPendingActionEvenOnMiss(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(items.DefaultRegistry(), nil, nil)
	translate := testTranslate()

	result := resolver.Search(fixedSource{0.99}, searchChunk(), "search-1", "en", translate,
		DefaultRoller(fixedSource{0}), 1)

	if result.Toast != nil {
		t.Fatalf("all-miss roll found %q", result.Toast.ItemID)
	}
	if want := translate("exploreFoundNothing", nil); result.Narrative != want {
		t.Errorf("narrative = %q, want %q", result.Narrative, want)
	}
	if len(result.Chunk.Items) != 0 {
		t.Error("miss added items")
	}

	got := result.Chunk.PendingActions
	if len(got) != 1 || got[0] != "other" {
		t.Errorf("pending actions = %v, want only the unrelated action", got)
	}
}

func TestSearch_UnknownTerrainFindsNothing(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(items.DefaultRegistry(), nil, nil)
	translate := testTranslate()

	chunk := &world.Chunk{Terrain: world.Terrain("void")}
	result := resolver.Search(fixedSource{0}, chunk, "", "en", translate,
		DefaultRoller(fixedSource{0}), 1)

	if result.Toast != nil {
		t.Errorf("terrain without a spawn table produced %q", result.Toast.ItemID)
	}
	if want := translate("exploreFoundNothing", nil); result.Narrative != want {
		t.Errorf("narrative = %q, want %q", result.Narrative, want)
	}
}

func TestSearch_ConditionGatesSpawn(t *testing.T) {
	t.Parallel()

	// Mountain snow lotus requires temperature <= 0; a warm mountain chunk
	// must never yield it even on a guaranteed roll.
	resolver := NewResolver(items.DefaultRegistry(), nil, nil)
	warm := 18.0
	chunk := &world.Chunk{Terrain: world.TerrainMountain, Moisture: 40, Temperature: &warm}

	result := resolver.Search(fixedSource{0}, chunk, "", "en", testTranslate(),
		DefaultRoller(fixedSource{0}), 1)
	if result.Toast != nil && result.Toast.ItemID == "snow_lotus" {
		t.Error("snow lotus spawned above freezing")
	}
}

func TestSoftcap(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 2 / 1.4},
		{4, 4 / 2.2},
	}
	for _, c := range cases {
		if got := softcap(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("softcap(%v) = %v, want %v", c.in, got, c.want)
		}
	}

	// Monotone but bounded: huge multipliers approach 1/slope.
	if softcap(1000) >= 1/softcapSlope {
		t.Error("softcap exceeded its asymptote")
	}
	if softcap(1000) <= softcap(10) {
		t.Error("softcap is not monotone")
	}
}

func TestSearch_ChanceClamps(t *testing.T) {
	t.Parallel()

	// With an enormous multiplier every natural candidate caps at 0.95 and
	// off-biome candidates at 0.3; a roll just above those caps misses all.
	resolver := NewResolver(items.DefaultRegistry(), nil, nil)
	result := resolver.Search(fixedSource{0.96}, searchChunk(), "", "en", testTranslate(),
		DefaultRoller(fixedSource{0}), 1e6)

	if result.Toast != nil {
		t.Errorf("roll above every clamp still found %q", result.Toast.ItemID)
	}
}
