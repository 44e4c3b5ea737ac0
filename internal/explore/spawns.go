// Built-in per-terrain spawn tables. Chances are pre-boost base values; the
// resolver applies the search boost and multiplier softcap on top.
package explore

import (
	"github.com/ngoccc0/dreamland-engine-sub007/internal/vocab"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

func fp(v float64) *float64 { return &v }

func atLeast(v float64) vocab.Range { return vocab.Range{Min: fp(v)} }
func atMost(v float64) vocab.Range  { return vocab.Range{Max: fp(v)} }

var defaultSpawns = map[world.Terrain][]SpawnEntry{
	world.TerrainForest: {
		{ItemID: "berries", BaseChance: 0.35},
		{ItemID: "mushroom", BaseChance: 0.3, Conditions: &vocab.Condition{
			Attributes: map[string]vocab.Range{"moisture": atLeast(40)}}},
		{ItemID: "herb_bundle", BaseChance: 0.15},
		{ItemID: "flint", BaseChance: 0.1},
	},
	world.TerrainGrassland: {
		{ItemID: "berries", BaseChance: 0.25},
		{ItemID: "herb_bundle", BaseChance: 0.2},
		{ItemID: "flint", BaseChance: 0.15},
	},
	world.TerrainDesert: {
		{ItemID: "cactus_fruit", BaseChance: 0.3},
		{ItemID: "flint", BaseChance: 0.2},
		{ItemID: "old_coin", BaseChance: 0.05},
	},
	world.TerrainSwamp: {
		{ItemID: "swamp_root", BaseChance: 0.3},
		{ItemID: "mushroom", BaseChance: 0.25},
		{ItemID: "herb_bundle", BaseChance: 0.1, Conditions: &vocab.Condition{
			TimeOfDay: "night"}},
	},
	world.TerrainMountain: {
		{ItemID: "iron_ore", BaseChance: 0.25},
		{ItemID: "flint", BaseChance: 0.25},
		{ItemID: "snow_lotus", BaseChance: 0.05, Conditions: &vocab.Condition{
			Attributes: map[string]vocab.Range{"temperature": atMost(0)}}},
	},
	world.TerrainCave: {
		{ItemID: "iron_ore", BaseChance: 0.3},
		{ItemID: "crystal_shard", BaseChance: 0.12, Conditions: &vocab.Condition{
			Attributes: map[string]vocab.Range{"magicAffinity": atLeast(40)}}},
		{ItemID: "obsidian", BaseChance: 0.08},
	},
	world.TerrainJungle: {
		{ItemID: "jungle_fruit", BaseChance: 0.35},
		{ItemID: "herb_bundle", BaseChance: 0.2},
		{ItemID: "mushroom", BaseChance: 0.15},
	},
	world.TerrainVolcanic: {
		{ItemID: "obsidian", BaseChance: 0.3},
		{ItemID: "iron_ore", BaseChance: 0.15},
	},
	world.TerrainTundra: {
		{ItemID: "snow_lotus", BaseChance: 0.15},
		{ItemID: "flint", BaseChance: 0.2},
	},
	world.TerrainBeach: {
		{ItemID: "seashell", BaseChance: 0.4},
		{ItemID: "driftwood", BaseChance: 0.35},
		{ItemID: "kelp", BaseChance: 0.15},
	},
	world.TerrainMesa: {
		{ItemID: "flint", BaseChance: 0.25},
		{ItemID: "iron_ore", BaseChance: 0.15},
		{ItemID: "cactus_fruit", BaseChance: 0.15},
	},
	world.TerrainOcean: {
		{ItemID: "kelp", BaseChance: 0.35},
		{ItemID: "driftwood", BaseChance: 0.2},
		{ItemID: "seashell", BaseChance: 0.15},
	},
	world.TerrainCity: {
		{ItemID: "old_coin", BaseChance: 0.3},
		{ItemID: "flint", BaseChance: 0.1},
	},
	world.TerrainUnderwater: {
		{ItemID: "kelp", BaseChance: 0.4},
		{ItemID: "seashell", BaseChance: 0.25},
		{ItemID: "crystal_shard", BaseChance: 0.06, Conditions: &vocab.Condition{
			Attributes: map[string]vocab.Range{"magicAffinity": atLeast(50)}}},
	},
}
