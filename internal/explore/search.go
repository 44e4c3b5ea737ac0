// Package explore resolves the search action: it pools discovery candidates
// for a chunk's biome, rolls each one, and derives a new chunk with any find
// merged in. The input chunk is never mutated.
// See DESIGN.md Section 6.
package explore

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/entropy"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/items"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/narrative"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/vocab"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

// Discovery tuning. Search is deliberately more generous than passive
// discovery, but the softcap and clamps keep large multipliers from
// guaranteeing finds.
const (
	searchBoost       = 1.4
	maxChance         = 0.95
	offBiomeChance    = 0.02
	maxOffBiomeChance = 0.3
	maxOffBiomeSlots  = 3
	softcapSlope      = 0.4
)

// SpawnEntry is one biome item template: an item that can be discovered in a
// terrain, gated by an optional condition.
type SpawnEntry struct {
	ItemID     string
	BaseChance float64
	Conditions *vocab.Condition
}

// QuantityRoller rolls a discovered quantity within an item's base range.
// Supplied by the caller so the resolver stays decoupled from any RNG.
type QuantityRoller func(r items.Range) int

// DefaultRoller returns a roller drawing uniformly from a Source.
func DefaultRoller(src entropy.Source) QuantityRoller {
	return func(r items.Range) int {
		if r.Max <= r.Min {
			return max(r.Min, 1)
		}
		return r.Min + src.Intn(r.Max-r.Min+1)
	}
}

// Toast is the notification payload for a successful find.
type Toast struct {
	Title    string
	ItemID   string
	Quantity int
	Emoji    string
}

// Result is the outcome of one search resolution.
type Result struct {
	Chunk     *world.Chunk // New chunk; the input is never mutated
	Narrative string
	Toast     *Toast // Nil when nothing was found
}

// Resolver performs search discovery rolls against an item registry and a
// set of per-terrain spawn tables.
type Resolver struct {
	registry *items.Registry
	spawns   map[world.Terrain][]SpawnEntry
	resolve  narrative.NameResolver
}

// NewResolver creates a search resolver. A nil spawns map selects the
// built-in tables; resolve may be nil when conditions use raw ids.
func NewResolver(registry *items.Registry, spawns map[world.Terrain][]SpawnEntry, resolve narrative.NameResolver) *Resolver {
	if spawns == nil {
		spawns = defaultSpawns
	}
	return &Resolver{registry: registry, spawns: spawns, resolve: resolve}
}

type candidate struct {
	def     items.Definition
	chance  float64
	natural bool
}

// Search resolves one search action: clears actionID from the chunk's
// pending actions, rolls the candidate pool, and returns a derived chunk
// plus narration. An empty pool or all-miss roll is a "found nothing"
// result, not an error.
func (r *Resolver) Search(src entropy.Source, chunk *world.Chunk, actionID, language string, translate narrative.TranslateFunc, roll QuantityRoller, spawnMultiplier float64) Result {
	next := chunk.WithoutPendingAction(actionID)

	entries := r.spawns[world.NormalizeTerrain(string(chunk.Terrain))]
	if len(entries) == 0 {
		return Result{Chunk: next, Narrative: translate("exploreFoundNothing", nil)}
	}

	pool := r.buildPool(src, chunk, entries)
	if len(pool) == 0 {
		return Result{Chunk: next, Narrative: translate("exploreFoundNothing", nil)}
	}

	// Shuffle to avoid order bias between natural and off-biome candidates.
	src.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	multiplier := softcap(spawnMultiplier)
	for _, c := range pool {
		chance := clamp(c.chance*multiplier*searchBoost, 0, maxChance)
		if !c.natural {
			chance = clamp(chance, 0, maxOffBiomeChance)
		}
		if src.Float64() >= chance {
			continue
		}

		quantity := roll(c.def.BaseQuantity)
		if quantity < 1 {
			quantity = 1
		}
		next = next.WithItemAdded(c.def.ID, quantity)

		name := c.def.Name.Resolve(language)
		repl := map[string]string{"item": name, "quantity": strconv.Itoa(quantity)}
		return Result{
			Chunk:     next,
			Narrative: translate("exploreFoundItem", repl),
			Toast: &Toast{
				Title:    translate("exploreToastTitle", repl),
				ItemID:   c.def.ID,
				Quantity: quantity,
				Emoji:    c.def.Emoji,
			},
		}
	}

	return Result{Chunk: next, Narrative: translate("exploreFoundNothing", nil)}
}

// buildPool gathers the natural candidates whose definition exists and whose
// condition passes, then up to three off-biome candidates drawn from items
// the world never spawns naturally.
func (r *Resolver) buildPool(src entropy.Source, chunk *world.Chunk, entries []SpawnEntry) []candidate {
	var pool []candidate
	inBiome := make(map[string]bool, len(entries))

	for _, e := range entries {
		inBiome[strings.ToLower(e.ItemID)] = true
		def, ok := r.registry.Get(e.ItemID)
		if !ok {
			continue
		}
		if !narrative.CheckCondition(e.Conditions, chunk, nil, r.resolve) {
			continue
		}
		pool = append(pool, candidate{def: def, chance: e.BaseChance, natural: true})
	}

	var offBiome []items.Definition
	for _, def := range r.registry.All() {
		if !def.Spawnable && !inBiome[strings.ToLower(def.ID)] {
			offBiome = append(offBiome, def)
		}
	}
	src.Shuffle(len(offBiome), func(i, j int) { offBiome[i], offBiome[j] = offBiome[j], offBiome[i] })
	if len(offBiome) > maxOffBiomeSlots {
		offBiome = offBiome[:maxOffBiomeSlots]
	}
	for _, def := range offBiome {
		pool = append(pool, candidate{def: def, chance: offBiomeChance, natural: false})
	}

	return pool
}

// softcap dampens spawn multipliers above 1 so stacked bonuses cannot make
// discovery trivial: softcap(1)=1, softcap(4)≈2.1, softcap(100)≈2.5.
func softcap(m float64) float64 {
	if m <= 1 {
		return m
	}
	return m / (1 + (m-1)*softcapSlope)
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
