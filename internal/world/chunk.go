// Package world provides the chunk data model the narrative engine reads:
// terrain categories, continuous environmental attributes, and the dynamic
// entity lists a chunk carries. Chunks are treated as snapshots — updates
// derive a new chunk, never mutate a shared one.
// See DESIGN.md Section 3.
package world

import "strings"

// Terrain is the category of a chunk's ground cover.
type Terrain string

const (
	TerrainForest     Terrain = "forest"
	TerrainGrassland  Terrain = "grassland"
	TerrainDesert     Terrain = "desert"
	TerrainSwamp      Terrain = "swamp"
	TerrainMountain   Terrain = "mountain"
	TerrainCave       Terrain = "cave"
	TerrainJungle     Terrain = "jungle"
	TerrainVolcanic   Terrain = "volcanic"
	TerrainTundra     Terrain = "tundra"
	TerrainBeach      Terrain = "beach"
	TerrainMesa       Terrain = "mesa"
	TerrainOcean      Terrain = "ocean"
	TerrainCity       Terrain = "city"
	TerrainUnderwater Terrain = "underwater"
)

// AllTerrains lists every terrain category in the enumeration.
var AllTerrains = []Terrain{
	TerrainForest, TerrainGrassland, TerrainDesert, TerrainSwamp,
	TerrainMountain, TerrainCave, TerrainJungle, TerrainVolcanic,
	TerrainTundra, TerrainBeach, TerrainMesa, TerrainOcean,
	TerrainCity, TerrainUnderwater,
}

// NormalizeTerrain maps a free-form terrain label to its canonical lowercase
// key, so vocabulary lookups tolerate case and whitespace differences.
func NormalizeTerrain(s string) Terrain {
	return Terrain(strings.ToLower(strings.TrimSpace(s)))
}

// ItemStack is an item occurrence inside a chunk.
type ItemStack struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Enemy describes the single optional enemy present in a chunk.
type Enemy struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"` // Display name; Type when empty
	HP   int    `json:"hp,omitempty"`
}

// DisplayName returns the enemy's display name, falling back to its type.
func (e Enemy) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Type
}

// Chunk is one grid cell of the explorable world. Numeric attributes are
// nominally 0–100 unless noted. Temperature and WindLevel are optional and
// skipped (never treated as zero) when nil.
type Chunk struct {
	X int `json:"x"`
	Y int `json:"y"`

	Terrain Terrain `json:"terrain"`

	// Environmental attributes.
	VegetationDensity int      `json:"vegetation_density"`
	Moisture          int      `json:"moisture"`
	Elevation         int      `json:"elevation"`
	LightLevel        int      `json:"light_level"` // Signed, roughly -100..100
	DangerLevel       int      `json:"danger_level"`
	MagicAffinity     int      `json:"magic_affinity"`
	HumanPresence     int      `json:"human_presence"`
	PredatorPresence  int      `json:"predator_presence"`
	Temperature       *float64 `json:"temperature,omitempty"` // °C-like, optional
	WindLevel         *int     `json:"wind_level,omitempty"`  // Optional
	SoilType          string   `json:"soil_type,omitempty"`

	// Dynamic contents.
	Items          []ItemStack `json:"items,omitempty"`
	Enemy          *Enemy      `json:"enemy,omitempty"`
	NPCs           []string    `json:"npcs,omitempty"`
	Structures     []string    `json:"structures,omitempty"`
	Description    string      `json:"description,omitempty"`
	Explored       bool        `json:"explored"`
	GameTime       uint64      `json:"game_time"` // Tick count, see time.go
	PendingActions []string    `json:"pending_actions,omitempty"`
}

// NumericAttribute returns the value of a named numeric attribute, for the
// condition evaluator's generic range tests. The second return is false when
// the name matches no attribute (or the attribute is optional and unset).
func (c *Chunk) NumericAttribute(name string) (float64, bool) {
	switch name {
	case "vegetationDensity":
		return float64(c.VegetationDensity), true
	case "moisture":
		return float64(c.Moisture), true
	case "elevation":
		return float64(c.Elevation), true
	case "lightLevel":
		return float64(c.LightLevel), true
	case "dangerLevel":
		return float64(c.DangerLevel), true
	case "magicAffinity":
		return float64(c.MagicAffinity), true
	case "humanPresence":
		return float64(c.HumanPresence), true
	case "predatorPresence":
		return float64(c.PredatorPresence), true
	case "temperature":
		if c.Temperature == nil {
			return 0, false
		}
		return *c.Temperature, true
	case "windLevel":
		if c.WindLevel == nil {
			return 0, false
		}
		return float64(*c.WindLevel), true
	}
	return 0, false
}

// Clone returns a deep copy of the chunk. Slices and optional fields are
// copied so the original can never be aliased through the result.
func (c *Chunk) Clone() *Chunk {
	next := *c
	if c.Temperature != nil {
		t := *c.Temperature
		next.Temperature = &t
	}
	if c.WindLevel != nil {
		w := *c.WindLevel
		next.WindLevel = &w
	}
	if c.Enemy != nil {
		e := *c.Enemy
		next.Enemy = &e
	}
	next.Items = append([]ItemStack(nil), c.Items...)
	next.NPCs = append([]string(nil), c.NPCs...)
	next.Structures = append([]string(nil), c.Structures...)
	next.PendingActions = append([]string(nil), c.PendingActions...)
	return &next
}

// WithoutPendingAction derives a new chunk with the given action id removed
// from the pending-actions list. The receiver is not modified.
func (c *Chunk) WithoutPendingAction(actionID string) *Chunk {
	next := c.Clone()
	filtered := next.PendingActions[:0]
	for _, id := range next.PendingActions {
		if id != actionID {
			filtered = append(filtered, id)
		}
	}
	next.PendingActions = filtered
	return next
}

// WithItemAdded derives a new chunk with quantity of itemID merged into the
// item list: an existing stack (matched by normalized id) is incremented,
// otherwise a new stack is appended. The receiver is not modified.
func (c *Chunk) WithItemAdded(itemID string, quantity int) *Chunk {
	next := c.Clone()
	key := strings.ToLower(strings.TrimSpace(itemID))
	for i := range next.Items {
		if strings.ToLower(strings.TrimSpace(next.Items[i].ID)) == key {
			next.Items[i].Quantity += quantity
			return next
		}
	}
	next.Items = append(next.Items, ItemStack{ID: itemID, Quantity: quantity})
	return next
}

// HasEnemyType reports whether the chunk's enemy matches the given type,
// compared case-insensitively.
func (c *Chunk) HasEnemyType(enemyType string) bool {
	return c.Enemy != nil && strings.EqualFold(c.Enemy.Type, enemyType)
}

// HasItem reports whether any item stack matches the given id,
// compared case-insensitively.
func (c *Chunk) HasItem(itemID string) bool {
	for _, s := range c.Items {
		if strings.EqualFold(s.ID, itemID) {
			return true
		}
	}
	return false
}
