// Package items provides the read-only item-definition registry the search
// resolver draws from. Definitions are static configuration; the registry is
// built once and never mutated.
// See DESIGN.md Section 6.
package items

import (
	"strings"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/lang"
)

// Range is an inclusive integer quantity interval.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Definition describes one item kind.
type Definition struct {
	ID           string    // Stable identity, matched case-insensitively
	Name         lang.Text // Localized display name
	Tier         int       // 1 (common) .. 5 (legendary)
	Emoji        string    // Cosmetic
	BaseQuantity Range     // Quantity rolled on discovery
	Spawnable    bool      // False = never spawns naturally in the world
	Effects      []string  // Effect ids applied on use; opaque to the narrator
}

// Registry maps item identity to its definition.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry builds a registry from definitions. IDs are normalized to
// lowercase; later duplicates replace earlier ones.
func NewRegistry(defs []Definition) *Registry {
	m := make(map[string]Definition, len(defs))
	for _, d := range defs {
		m[normalize(d.ID)] = d
	}
	return &Registry{defs: m}
}

// DefaultRegistry returns the built-in item set.
func DefaultRegistry() *Registry {
	return NewRegistry(defaultDefinitions)
}

// Get returns the definition for an item id, matched case-insensitively.
func (r *Registry) Get(id string) (Definition, bool) {
	d, ok := r.defs[normalize(id)]
	return d, ok
}

// All returns every definition in the registry. The slice is freshly
// allocated; callers may reorder it freely.
func (r *Registry) All() []Definition {
	out := make([]Definition, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	return out
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

var defaultDefinitions = []Definition{
	{ID: "berries", Name: lang.Text{"en": "wild berries", "vi": "quả mọng dại"}, Tier: 1, Emoji: "🫐",
		BaseQuantity: Range{Min: 2, Max: 6}, Spawnable: true, Effects: []string{"restore_hunger_small"}},
	{ID: "mushroom", Name: lang.Text{"en": "forest mushroom", "vi": "nấm rừng"}, Tier: 1, Emoji: "🍄",
		BaseQuantity: Range{Min: 1, Max: 4}, Spawnable: true, Effects: []string{"restore_hunger_small"}},
	{ID: "herb_bundle", Name: lang.Text{"en": "medicinal herbs", "vi": "thảo dược"}, Tier: 2, Emoji: "🌿",
		BaseQuantity: Range{Min: 1, Max: 3}, Spawnable: true, Effects: []string{"heal_small"}},
	{ID: "driftwood", Name: lang.Text{"en": "driftwood", "vi": "gỗ trôi"}, Tier: 1, Emoji: "🪵",
		BaseQuantity: Range{Min: 1, Max: 5}, Spawnable: true},
	{ID: "flint", Name: lang.Text{"en": "flint shard", "vi": "mảnh đá lửa"}, Tier: 1, Emoji: "🪨",
		BaseQuantity: Range{Min: 1, Max: 3}, Spawnable: true},
	{ID: "cactus_fruit", Name: lang.Text{"en": "cactus fruit", "vi": "quả xương rồng"}, Tier: 1, Emoji: "🌵",
		BaseQuantity: Range{Min: 1, Max: 3}, Spawnable: true, Effects: []string{"restore_thirst_small"}},
	{ID: "swamp_root", Name: lang.Text{"en": "marsh root", "vi": "rễ đầm lầy"}, Tier: 2, Emoji: "🥔",
		BaseQuantity: Range{Min: 1, Max: 2}, Spawnable: true, Effects: []string{"restore_hunger_small"}},
	{ID: "iron_ore", Name: lang.Text{"en": "iron ore", "vi": "quặng sắt"}, Tier: 2, Emoji: "⛏️",
		BaseQuantity: Range{Min: 1, Max: 3}, Spawnable: true},
	{ID: "crystal_shard", Name: lang.Text{"en": "glowing crystal shard", "vi": "mảnh pha lê phát sáng"}, Tier: 3, Emoji: "💎",
		BaseQuantity: Range{Min: 1, Max: 1}, Spawnable: true, Effects: []string{"mana_small"}},
	{ID: "obsidian", Name: lang.Text{"en": "obsidian chunk", "vi": "khối hắc diện thạch"}, Tier: 3, Emoji: "🖤",
		BaseQuantity: Range{Min: 1, Max: 2}, Spawnable: true},
	{ID: "snow_lotus", Name: lang.Text{"en": "snow lotus", "vi": "tuyết liên"}, Tier: 3, Emoji: "🪷",
		BaseQuantity: Range{Min: 1, Max: 1}, Spawnable: true, Effects: []string{"heal_medium"}},
	{ID: "seashell", Name: lang.Text{"en": "spiral seashell", "vi": "vỏ ốc xoắn"}, Tier: 1, Emoji: "🐚",
		BaseQuantity: Range{Min: 1, Max: 4}, Spawnable: true},
	{ID: "kelp", Name: lang.Text{"en": "edible kelp", "vi": "tảo bẹ"}, Tier: 1, Emoji: "🌱",
		BaseQuantity: Range{Min: 2, Max: 5}, Spawnable: true, Effects: []string{"restore_hunger_small"}},
	{ID: "old_coin", Name: lang.Text{"en": "tarnished coin", "vi": "đồng xu hoen gỉ"}, Tier: 2, Emoji: "🪙",
		BaseQuantity: Range{Min: 1, Max: 8}, Spawnable: true},
	{ID: "jungle_fruit", Name: lang.Text{"en": "spiked jungle fruit", "vi": "trái rừng gai"}, Tier: 2, Emoji: "🍈",
		BaseQuantity: Range{Min: 1, Max: 3}, Spawnable: true, Effects: []string{"restore_hunger_medium"}},

	// Relics — never spawn naturally; only reachable through the search
	// resolver's off-biome candidate slots.
	{ID: "ancient_blade", Name: lang.Text{"en": "ancient blade", "vi": "cổ kiếm"}, Tier: 5, Emoji: "⚔️",
		BaseQuantity: Range{Min: 1, Max: 1}, Spawnable: false},
	{ID: "sealed_scroll", Name: lang.Text{"en": "sealed scroll", "vi": "cuộn giấy niêm phong"}, Tier: 4, Emoji: "📜",
		BaseQuantity: Range{Min: 1, Max: 1}, Spawnable: false},
	{ID: "dream_fragment", Name: lang.Text{"en": "dream fragment", "vi": "mảnh mộng"}, Tier: 5, Emoji: "🌙",
		BaseQuantity: Range{Min: 1, Max: 1}, Spawnable: false, Effects: []string{"mana_large"}},
	{ID: "traveler_compass", Name: lang.Text{"en": "traveler's compass", "vi": "la bàn lữ khách"}, Tier: 4, Emoji: "🧭",
		BaseQuantity: Range{Min: 1, Max: 1}, Spawnable: false},
}
