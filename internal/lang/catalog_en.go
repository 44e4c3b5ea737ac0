package lang

// English message table. Keys are grouped by the narration path that uses
// them; replacement markers use {name} syntax.
var messagesEN = map[string]string{
	// Generic fallbacks.
	"narrativeGeneric": "You survey unfamiliar terrain, alert for anything of note.",
	"actionUnknown":    "Something happens, though you cannot quite say what.",

	// Computed placeholder details — light.
	"detailLightDark":   "darkness presses in around you",
	"detailLightDim":    "a dim half-light blurs the edges of things",
	"detailLightNormal": "the light falls clear and even",

	// Computed placeholder details — temperature.
	"detailTempFreezing": "the cold bites at every patch of bare skin",
	"detailTempCold":     "a chill hangs in the air",
	"detailTempMild":     "the air is mild and easy",
	"detailTempHot":      "heat shimmers over everything",

	// Computed placeholder details — moisture.
	"detailMoistureParched": "the ground is cracked and parched",
	"detailMoistureDry":     "the air is dry against your throat",
	"detailMoistureNormal":  "the air carries a faint dampness",
	"detailMoistureSoaked":  "everything drips with saturated wet",

	// Player condition phrases.
	"playerHealthCritical": "your wounds scream with every movement",
	"playerHealthLow":      "your body aches from injuries",
	"playerHealthSteady":   "you feel steady on your feet",
	"playerHealthStrong":   "you feel strong and whole",
	"playerStaminaSpent":   "your legs tremble with exhaustion",
	"playerStaminaWinded":  "your breath comes ragged",
	"playerStaminaFresh":   "your stride is light and rested",

	// Attack narration.
	"attackCritFail":   "Your strike goes disastrously wide of the {enemy}, throwing you off balance.",
	"attackFail":       "You lash out at the {enemy}, but the blow glances off harmlessly.",
	"attackSuccess":    "Your attack lands solidly on the {enemy}.",
	"attackCritSuccess": "You strike with perfect timing — a devastating hit tears into the {enemy}!",
	"attackDamage":     "The blow deals {damage} damage.",

	// Enemy reaction.
	"enemyDefeated":  "The {enemy} collapses and does not rise again.",
	"enemyFled":      "The {enemy} breaks away and flees into the distance.",
	"enemyRetaliate": "The {enemy} retaliates, raking you for {damage} damage!",
	"enemyPrepares":  "The {enemy} circles warily, preparing to fight.",

	// Sensory feedback.
	"sensoryHeat":    "Sweat stings your eyes in the oppressive heat.",
	"sensoryCold":    "Your breath fogs in the frigid air.",
	"sensoryDark":    "Shadows swallow the edges of your vision.",
	"sensoryDamp":    "The damp air clings to your skin.",
	"sensoryAmbient": "The land holds its breath around you.",

	// Item use narration.
	"itemSelfSuccess":   "You use the {item}, and relief spreads through you.",
	"itemSelfFailure":   "You use the {item}, but nothing seems to happen.",
	"itemTargetSuccess": "You offer the {item} to the {target} — it worked!",
	"itemTargetFailure": "You offer the {item} to the {target}, but it wants nothing of it.",

	// Skill narration.
	"skillBackfire":  "The {skill} slips from your control and backfires, searing you for {damage} damage!",
	"skillFizzle":    "You attempt {skill}, but the effort fizzles to nothing.",
	"skillHeal":      "{skill} knits your wounds, restoring {amount} health.",
	"skillDamage":    "{skill} erupts against the {enemy}, dealing {damage} damage.",
	"skillLifesteal": "Stolen vitality flows back into you, restoring {amount} health.",

	// Search / explore.
	"exploreFoundItem":    "Searching the area, you uncover {item} ×{quantity}.",
	"exploreFoundNothing": "You search carefully, but find nothing of use.",
	"exploreToastTitle":   "Found {item}",
}
