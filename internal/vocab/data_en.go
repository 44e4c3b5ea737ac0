package vocab

import "github.com/ngoccc0/dreamland-engine-sub007/internal/world"

// Helpers for authoring condition bounds inline.
func fp(v float64) *float64 { return &v }

func rng(min, max float64) *Range { return &Range{Min: fp(min), Max: fp(max)} }
func atLeast(min float64) Range   { return Range{Min: fp(min)} }
func atMost(max float64) Range    { return Range{Max: fp(max)} }

// English biome tables. Authored against the mood analyzer's exact
// thresholds — a template tagged "dark" only fires when lightLevel produced
// that tag.
var biomesEN = map[world.Terrain]*Biome{
	world.TerrainForest: {
		Terrain: world.TerrainForest,
		Icon:    "🌲",
		Pools: Pools{
			Adjectives: []string{"ancient", "dense", "shadowed", "moss-draped", "towering", "whispering"},
			Features:   []string{"gnarled oaks", "a fern-choked hollow", "a fallen giant of a tree", "tangled undergrowth", "a narrow deer trail", "a moss-covered boulder"},
			Smells:     []string{"damp earth", "pine resin", "rotting leaves", "wild mushrooms"},
			Sounds:     []string{"birdsong overhead", "branches creaking", "leaves rustling", "a distant woodpecker"},
			Sky:        []string{"a canopy-broken sky", "shafts of light through the leaves", "green-filtered daylight"},
		},
		Templates: []Template{
			{ID: "forest-open-1", Type: TypeOpening, Weight: 1,
				Text: "You step beneath {{adjectives}} trees, where {{features}} crowd the path."},
			{ID: "forest-open-2", Type: TypeOpening, Moods: []MoodTag{MoodSerene, MoodPeaceful},
				Text: "The forest here feels {{adjectives}}, almost welcoming."},
			{ID: "forest-open-dark", Type: TypeOpening, Moods: []MoodTag{MoodDark, MoodGloomy},
				Text: "The trees press close and {light_level_detail}."},
			{ID: "forest-env-1", Type: TypeEnvironmentDetail,
				Text: "Past {{features}}, the ground dips away under {{sky}}."},
			{ID: "forest-env-2", Type: TypeEnvironmentDetail, Moods: []MoodTag{MoodLush, MoodWet},
				Text: "Everything grows thick here; {moisture_detail}."},
			{ID: "forest-env-night", Type: TypeEnvironmentDetail,
				Conditions: &Condition{TimeOfDay: "night"},
				Text:       "Night sounds fill the wood — {{sounds}} somewhere beyond sight."},
			{ID: "forest-sense-1", Type: TypeSensoryDetail,
				Text: "The smell of {{smells}} hangs in the air, and you hear {{sounds}}."},
			{ID: "forest-sense-2", Type: TypeSensoryDetail, Moods: []MoodTag{MoodMysterious},
				Text: "Something about the silence between {{sounds}} sets your teeth on edge."},
			{ID: "forest-enemy", Type: TypeEntityReport,
				Conditions: &Condition{RequiredEnemy: "wolf"},
				Moods:      []MoodTag{MoodDanger, MoodWild},
				Text:       "A {enemy_name} watches you from between the trees."},
		},
	},

	world.TerrainGrassland: {
		Terrain: world.TerrainGrassland,
		Icon:    "🌾",
		Pools: Pools{
			Adjectives: []string{"rolling", "windswept", "open", "sun-bleached", "endless"},
			Features:   []string{"waist-high grass", "a lone crooked tree", "scattered wildflowers", "an old cart track", "a low rise"},
			Smells:     []string{"crushed grass", "dry hay", "warm dust", "distant rain"},
			Sounds:     []string{"wind hissing through the grass", "insects droning", "a hawk's cry"},
			Sky:        []string{"a wide open sky", "clouds trailing to the horizon", "pale endless blue"},
		},
		Templates: []Template{
			{ID: "grass-open-1", Type: TypeOpening, Weight: 1,
				Text: "{{adjectives}} plains stretch away under {{sky}}."},
			{ID: "grass-open-2", Type: TypeOpening, Moods: []MoodTag{MoodPeaceful, MoodVast},
				Text: "The grassland lies {{adjectives}} and calm in every direction."},
			{ID: "grass-env-1", Type: TypeEnvironmentDetail,
				Text: "Near {{features}}, {temp_detail}."},
			{ID: "grass-env-2", Type: TypeEnvironmentDetail,
				Conditions: &Condition{Attributes: map[string]Range{"windLevel": atLeast(40)}},
				Text:       "The wind drives waves through {{features}}."},
			{ID: "grass-sense-1", Type: TypeSensoryDetail,
				Text: "You catch the scent of {{smells}} on the breeze; {{sounds}} carries from far off."},
			{ID: "grass-sense-2", Type: TypeSensoryDetail, Moods: []MoodTag{MoodVibrant},
				Text: "The air is alive with {{sounds}}."},
		},
	},

	world.TerrainDesert: {
		Terrain: world.TerrainDesert,
		Icon:    "🏜️",
		Pools: Pools{
			Adjectives: []string{"scorched", "barren", "shimmering", "wind-carved", "bone-dry"},
			Features:   []string{"a ridge of dunes", "sun-cracked hardpan", "a skeletal thornbush", "bleached bones half-buried in sand", "a wind-scoured outcrop"},
			Smells:     []string{"hot stone", "dry dust", "nothing at all, only heat"},
			Sounds:     []string{"sand hissing across the ground", "a vast ringing silence", "wind moaning over the dunes"},
			Sky:        []string{"a white, merciless sky", "heat-haze blurring the horizon", "a sun like a hammer"},
		},
		Templates: []Template{
			{ID: "desert-open-1", Type: TypeOpening, Weight: 1,
				Text: "{{adjectives}} wastes spread before you beneath {{sky}}."},
			{ID: "desert-open-2", Type: TypeOpening, Moods: []MoodTag{MoodArid, MoodDesolate},
				Text: "Nothing moves among {{features}}; {moisture_detail}."},
			{ID: "desert-env-1", Type: TypeEnvironmentDetail,
				Text: "You pass {{features}}, and {temp_detail}."},
			{ID: "desert-env-night", Type: TypeEnvironmentDetail,
				Conditions: &Condition{TimeOfDay: "night"},
				Text:       "With the sun gone, cold settles fast over {{features}}."},
			{ID: "desert-sense-1", Type: TypeSensoryDetail,
				Text: "There is only {{sounds}} and the smell of {{smells}}."},
		},
	},

	world.TerrainSwamp: {
		Terrain: world.TerrainSwamp,
		Icon:    "🪷",
		Pools: Pools{
			Adjectives: []string{"stagnant", "mist-wreathed", "brackish", "rotting", "sunken"},
			Features:   []string{"black standing water", "cypress knees breaking the surface", "a mat of algae", "half-drowned deadfalls", "a crooked boardwalk long since collapsed"},
			Smells:     []string{"decay", "sulfurous mud", "wet rot", "stagnant water"},
			Sounds:     []string{"frogs chorusing", "something sliding into the water", "bubbles rising from the muck", "mosquitoes whining"},
			Sky:        []string{"a grey lid of mist", "light strained through hanging moss", "a low and sullen sky"},
		},
		Templates: []Template{
			{ID: "swamp-open-1", Type: TypeOpening, Weight: 1,
				Text: "You wade into {{adjectives}} marshland, where {{features}} bar the way."},
			{ID: "swamp-open-2", Type: TypeOpening, Moods: []MoodTag{MoodGloomy, MoodMysterious},
				Text: "Mist coils over {{features}}, and {light_level_detail}."},
			{ID: "swamp-env-1", Type: TypeEnvironmentDetail,
				Text: "Beyond {{features}}, {moisture_detail}."},
			{ID: "swamp-env-2", Type: TypeEnvironmentDetail, Moods: []MoodTag{MoodWet, MoodLush},
				Conditions: &Condition{SoilTypes: []string{"peaty"}},
				Text:       "The peat sucks at your boots with every step."},
			{ID: "swamp-sense-1", Type: TypeSensoryDetail,
				Text: "The stench of {{smells}} is everywhere; {{sounds}} echoes across the water."},
			{ID: "swamp-sense-2", Type: TypeSensoryDetail, Moods: []MoodTag{MoodForeboding, MoodThreatening},
				Text: "Everything goes quiet at once — no {{sounds}}, nothing."},
		},
	},

	world.TerrainMountain: {
		Terrain: world.TerrainMountain,
		Icon:    "⛰️",
		Pools: Pools{
			Adjectives: []string{"sheer", "wind-blasted", "granite", "snow-dusted", "towering"},
			Features:   []string{"a scree slope", "a knife-edge ridge", "a field of shattered boulders", "a narrow switchback trail", "an overhanging cliff"},
			Smells:     []string{"cold stone", "thin clean air", "lichen and frost"},
			Sounds:     []string{"wind screaming over the ridgeline", "rocks clattering somewhere below", "an eagle's distant cry"},
			Sky:        []string{"a hard blue sky close enough to touch", "clouds below the summit line", "sunlight off distant snowfields"},
		},
		Templates: []Template{
			{ID: "mountain-open-1", Type: TypeOpening, Weight: 1,
				Text: "The path climbs into {{adjectives}} heights past {{features}}."},
			{ID: "mountain-open-2", Type: TypeOpening, Moods: []MoodTag{MoodElevated, MoodVast},
				Text: "From this height the world falls away beneath {{sky}}."},
			{ID: "mountain-env-1", Type: TypeEnvironmentDetail,
				Text: "You skirt {{features}}, where {temp_detail}."},
			{ID: "mountain-env-cold", Type: TypeEnvironmentDetail, Moods: []MoodTag{MoodCold, MoodHarsh},
				Text: "Frost rimes every surface of {{features}}."},
			{ID: "mountain-sense-1", Type: TypeSensoryDetail,
				Text: "The air smells of {{smells}}, and you hear {{sounds}}."},
		},
	},

	world.TerrainCave: {
		Terrain: world.TerrainCave,
		Icon:    "🕳️",
		Pools: Pools{
			Adjectives: []string{"lightless", "dripping", "echoing", "narrow", "ancient"},
			Features:   []string{"a forest of stalactites", "a black fissure in the floor", "a shelf of flowstone", "a passage barely wide enough to squeeze through", "a still underground pool"},
			Smells:     []string{"wet limestone", "bat guano", "mineral-cold air", "old dust"},
			Sounds:     []string{"water dripping somewhere in the dark", "your own footsteps echoing", "a faint skittering", "absolute silence"},
			Sky:        []string{"a ceiling lost in darkness", "stone pressing down overhead"},
		},
		Templates: []Template{
			{ID: "cave-open-1", Type: TypeOpening, Weight: 1,
				Text: "The passage opens into {{adjectives}} dark, and {light_level_detail}."},
			{ID: "cave-open-2", Type: TypeOpening, Moods: []MoodTag{MoodConfined, MoodForeboding},
				Text: "Stone closes in around you; {{features}} loom at the edge of sight."},
			{ID: "cave-env-1", Type: TypeEnvironmentDetail,
				Text: "Your light picks out {{features}} beneath {{sky}}."},
			{ID: "cave-env-2", Type: TypeEnvironmentDetail, Moods: []MoodTag{MoodMysterious},
				Conditions: &Condition{Attributes: map[string]Range{"magicAffinity": atLeast(40)}},
				Text:       "Veins in the rock give off a faint, impossible glow."},
			{ID: "cave-sense-1", Type: TypeSensoryDetail,
				Text: "The air tastes of {{smells}}; {{sounds}} is the only sound."},
			{ID: "cave-sense-2", Type: TypeSensoryDetail, Moods: []MoodTag{MoodDanger, MoodThreatening},
				Text: "Something moved in the dark ahead. You are sure of it."},
		},
	},

	world.TerrainJungle: {
		Terrain: world.TerrainJungle,
		Icon:    "🌴",
		Pools: Pools{
			Adjectives: []string{"steaming", "riotous", "emerald", "strangling", "fever-bright"},
			Features:   []string{"a wall of lianas", "buttress roots taller than a man", "a curtain of hanging vines", "broad dripping leaves", "an orchid-crusted trunk"},
			Smells:     []string{"green rot", "heavy sweet blossoms", "wet bark", "humid earth"},
			Sounds:     []string{"a thousand unseen insects", "monkeys shrieking in the canopy", "rain drumming on leaves far above", "a deep coughing growl"},
			Sky:        []string{"a roof of green with no sky at all", "sunlight strained to green murk"},
		},
		Templates: []Template{
			{ID: "jungle-open-1", Type: TypeOpening, Weight: 1,
				Text: "You hack into {{adjectives}} growth where {{features}} block every path."},
			{ID: "jungle-open-2", Type: TypeOpening, Moods: []MoodTag{MoodLush, MoodVibrant, MoodWild},
				Text: "Life crowds every inch here — {moisture_detail}."},
			{ID: "jungle-env-1", Type: TypeEnvironmentDetail,
				Text: "Under {{sky}}, {{features}} drip steadily."},
			{ID: "jungle-sense-1", Type: TypeSensoryDetail,
				Text: "The air reeks of {{smells}} while {{sounds}} never stops."},
			{ID: "jungle-sense-danger", Type: TypeSensoryDetail, Moods: []MoodTag{MoodDanger, MoodWild},
				Conditions: &Condition{Attributes: map[string]Range{"predatorPresence": atLeast(60)}},
				Text:       "The insect-chorus dies, and {{sounds}} rolls through the green."},
		},
	},

	world.TerrainVolcanic: {
		Terrain: world.TerrainVolcanic,
		Icon:    "🌋",
		Pools: Pools{
			Adjectives: []string{"blasted", "ash-grey", "smoldering", "glassy", "sulfur-stained"},
			Features:   []string{"a field of razor-edged obsidian", "fumaroles venting yellow steam", "a cooled lava flow like black rope", "a glowing fissure", "drifts of warm ash"},
			Smells:     []string{"sulfur", "hot ash", "scorched rock"},
			Sounds:     []string{"the ground's deep grumble", "steam hissing from vents", "cinders crunching underfoot"},
			Sky:        []string{"a sky stained orange-grey", "columns of smoke climbing the horizon"},
		},
		Templates: []Template{
			{ID: "volcanic-open-1", Type: TypeOpening, Weight: 1,
				Text: "You cross {{adjectives}} ground beneath {{sky}}."},
			{ID: "volcanic-open-2", Type: TypeOpening, Moods: []MoodTag{MoodHot, MoodSmoldering, MoodDanger},
				Text: "Heat rolls off {{features}} in waves; {temp_detail}."},
			{ID: "volcanic-env-1", Type: TypeEnvironmentDetail,
				Text: "You give {{features}} a wide berth."},
			{ID: "volcanic-sense-1", Type: TypeSensoryDetail,
				Text: "The stink of {{smells}} burns your throat as {{sounds}} rises and falls."},
		},
	},

	world.TerrainTundra: {
		Terrain: world.TerrainTundra,
		Icon:    "🧊",
		Pools: Pools{
			Adjectives: []string{"frozen", "featureless", "wind-scoured", "iron-hard", "pale"},
			Features:   []string{"a crust of wind-packed snow", "frost-shattered rock", "a frozen meltwater channel", "stunted dwarf willows", "caribou tracks pressed in old snow"},
			Smells:     []string{"clean ice", "nothing — the cold has scoured all scent away"},
			Sounds:     []string{"wind keening without pause", "snow squeaking underfoot", "ice cracking somewhere distant"},
			Sky:        []string{"a flat white sky", "low sun crawling the horizon", "faint shifting aurora"},
		},
		Templates: []Template{
			{ID: "tundra-open-1", Type: TypeOpening, Weight: 1,
				Text: "{{adjectives}} flats run to the horizon under {{sky}}."},
			{ID: "tundra-open-2", Type: TypeOpening, Moods: []MoodTag{MoodCold, MoodBarren, MoodHarsh},
				Text: "The cold out here is a living thing; {temp_detail}."},
			{ID: "tundra-env-1", Type: TypeEnvironmentDetail,
				Text: "You pick a path across {{features}}."},
			{ID: "tundra-sense-1", Type: TypeSensoryDetail,
				Text: "There is only {{sounds}} and the smell of {{smells}}."},
		},
	},

	world.TerrainBeach: {
		Terrain: world.TerrainBeach,
		Icon:    "🏖️",
		Pools: Pools{
			Adjectives: []string{"wave-washed", "shell-strewn", "wind-ruffled", "golden", "tide-smoothed"},
			Features:   []string{"a line of drying kelp", "driftwood bleached silver", "tide pools among the rocks", "dunes anchored with sea grass", "a crescent of wet sand"},
			Smells:     []string{"salt spray", "drying seaweed", "clean ocean air"},
			Sounds:     []string{"surf breaking in slow rhythm", "gulls wheeling and crying", "wind off the water"},
			Sky:        []string{"a bright sky over open water", "clouds stacked on the sea horizon"},
		},
		Templates: []Template{
			{ID: "beach-open-1", Type: TypeOpening, Weight: 1,
				Text: "You walk {{adjectives}} sand where {{features}} mark the tide line."},
			{ID: "beach-open-2", Type: TypeOpening, Moods: []MoodTag{MoodSerene, MoodPeaceful},
				Text: "The shore lies quiet under {{sky}}."},
			{ID: "beach-env-1", Type: TypeEnvironmentDetail,
				Text: "Past {{features}}, the water stretches away."},
			{ID: "beach-sense-1", Type: TypeSensoryDetail,
				Text: "You taste {{smells}} on the wind and listen to {{sounds}}."},
		},
	},

	world.TerrainMesa: {
		Terrain: world.TerrainMesa,
		Icon:    "🪨",
		Pools: Pools{
			Adjectives: []string{"red-banded", "flat-topped", "sun-hammered", "canyon-cut", "striated"},
			Features:   []string{"a sandstone spire", "a slot canyon's shadowed mouth", "hoodoos in a crooked row", "a talus slope of red rubble", "petroglyphs scratched into varnish"},
			Smells:     []string{"baked clay", "sagebrush", "dry wind"},
			Sounds:     []string{"wind funneling through the canyons", "a raven croaking", "pebbles trickling down the cliffs"},
			Sky:        []string{"a hard turquoise sky", "cliff shadows long across the flats"},
		},
		Templates: []Template{
			{ID: "mesa-open-1", Type: TypeOpening, Weight: 1,
				Text: "{{adjectives}} cliffs rise around you under {{sky}}."},
			{ID: "mesa-env-1", Type: TypeEnvironmentDetail,
				Text: "You pass {{features}}, and {temp_detail}."},
			{ID: "mesa-sense-1", Type: TypeSensoryDetail,
				Text: "The air smells of {{smells}}; {{sounds}} is the only voice out here."},
		},
	},

	world.TerrainOcean: {
		Terrain: world.TerrainOcean,
		Icon:    "🌊",
		Pools: Pools{
			Adjectives: []string{"heaving", "slate-grey", "endless", "white-capped", "deep"},
			Features:   []string{"long rolling swells", "a drifting mat of weed", "whitecaps to the horizon", "a current-line of churned water"},
			Smells:     []string{"brine", "cold spray", "open-water air"},
			Sounds:     []string{"water slapping and surging", "wind over the swells", "a far-off whale's breath"},
			Sky:        []string{"sky and sea meeting in haze", "clouds running before the wind"},
		},
		Templates: []Template{
			{ID: "ocean-open-1", Type: TypeOpening, Weight: 1,
				Text: "{{adjectives}} water surrounds you beneath {{sky}}."},
			{ID: "ocean-env-1", Type: TypeEnvironmentDetail,
				Text: "{{features}} pass beneath you, fading into the deep."},
			{ID: "ocean-sense-1", Type: TypeSensoryDetail,
				Text: "You taste {{smells}} with every breath; there is {{sounds}} and nothing else."},
		},
	},

	world.TerrainCity: {
		Terrain: world.TerrainCity,
		Icon:    "🏙️",
		Pools: Pools{
			Adjectives: []string{"crowded", "soot-stained", "maze-like", "lamplit", "walled"},
			Features:   []string{"a market square", "narrow stepped alleys", "a fountain gone green with age", "shuttered shopfronts", "a watchtower over the gate"},
			Smells:     []string{"woodsmoke", "street food frying", "open drains", "tanneries on the wind"},
			Sounds:     []string{"hawkers crying their wares", "cartwheels on cobblestones", "a temple bell", "argument spilling from a tavern"},
			Sky:        []string{"a sky cut into strips by rooflines", "smoke haze over the chimneys"},
		},
		Templates: []Template{
			{ID: "city-open-1", Type: TypeOpening, Weight: 1,
				Text: "You enter {{adjectives}} streets past {{features}}."},
			{ID: "city-open-2", Type: TypeOpening, Moods: []MoodTag{MoodCivilized, MoodStructured},
				Text: "The city wraps around you, ordered and alive."},
			{ID: "city-open-empty", Type: TypeOpening, Moods: []MoodTag{MoodAbandoned},
				Text: "The streets here stand empty; {{features}} gathers dust."},
			{ID: "city-env-1", Type: TypeEnvironmentDetail,
				Text: "Past {{features}}, the crowd thins beneath {{sky}}."},
			{ID: "city-env-night", Type: TypeEnvironmentDetail,
				Conditions: &Condition{TimeOfDay: "night"},
				Text:       "Lamplight pools under the eaves; {{sounds}} drifts from somewhere warm."},
			{ID: "city-sense-1", Type: TypeSensoryDetail,
				Text: "The air carries {{smells}} over the noise of {{sounds}}."},
		},
	},

	world.TerrainUnderwater: {
		Terrain: world.TerrainUnderwater,
		Icon:    "🫧",
		Pools: Pools{
			Adjectives: []string{"blue-green", "pressure-heavy", "silent", "light-dappled", "abyssal"},
			Features:   []string{"a coral shelf", "a forest of swaying kelp", "a sand channel between reef heads", "a dark drop-off into the deep", "a shipwreck's ribs"},
			Smells:     []string{"brine through your gear", "cold clean water"},
			Sounds:     []string{"your own bubbles rising", "the reef's faint crackle", "a vast muffled quiet"},
			Sky:        []string{"the surface shimmering far above", "light failing into blue darkness below"},
		},
		Templates: []Template{
			{ID: "underwater-open-1", Type: TypeOpening, Weight: 1,
				Text: "You drift through {{adjectives}} water along {{features}}."},
			{ID: "underwater-open-2", Type: TypeOpening, Moods: []MoodTag{MoodEthereal, MoodMysterious},
				Text: "Below, {{features}} fades into the dark; {light_level_detail}."},
			{ID: "underwater-env-1", Type: TypeEnvironmentDetail,
				Text: "Overhead, {{sky}}."},
			{ID: "underwater-sense-1", Type: TypeSensoryDetail,
				Text: "There is only {{sounds}} down here."},
		},
	},
}

// keywordVariationsEN maps condition bands to descriptive adjectives for the
// detail synthesizer.
var keywordVariationsEN = map[string][]string{
	"hot":    {"sweltering", "scorching", "oppressive", "baking"},
	"cold":   {"freezing", "bitter", "numbing", "frigid"},
	"mild":   {"mild", "gentle", "temperate", "soft"},
	"high":   {"heavy", "thick", "saturated", "drenched"},
	"medium": {"steady", "even", "unremarkable"},
	"low":    {"thin", "sparse", "faint", "meager"},
	"dark":   {"black", "shadowed", "lightless", "murky"},
	"bright": {"brilliant", "glaring", "radiant", "clear"},
}

// sentencePatternsEN are the synthesizer's fallback sentence shapes.
var sentencePatternsEN = []string{
	"The {adjective} air settles over {feature}.",
	"Everything here feels {adjective}, down to {feature}.",
	"A {adjective} stillness hangs around {feature}.",
	"You notice how {adjective} it is near {feature}.",
	"{feature} stands out in the {adjective} surroundings.",
}
