// Action narration: converts an already-resolved action outcome into a
// single prose string. The numeric resolution (damage, taming odds) happens
// upstream; this code only narrates the result object it is handed.
// See DESIGN.md Section 2.
package narrative

import (
	"strconv"
	"strings"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/entropy"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

// ActionKind tags the ActionResult union. Adding a kind is a compiler-visible
// change: the narrator's switch covers every constant.
type ActionKind uint8

const (
	ActionUnknown ActionKind = iota
	ActionAttack
	ActionUseItem
	ActionUseSkill
)

// SuccessTier classifies how well a resolved action went.
type SuccessTier uint8

const (
	TierCriticalFailure SuccessTier = iota
	TierFailure
	TierSuccess
	TierGreatSuccess
	TierCriticalSuccess
)

// EnemyReaction is the enemy's state after an attack resolves.
type EnemyReaction uint8

const (
	ReactionPrepares EnemyReaction = iota
	ReactionDefeated
	ReactionFled
	ReactionRetaliated
)

// SkillEffect is the declared effect class of a used skill.
type SkillEffect uint8

const (
	EffectHeal SkillEffect = iota
	EffectDamage
)

// AttackResult carries the resolved outcome of an attack action.
type AttackResult struct {
	Tier              SuccessTier
	EnemyName         string
	Damage            int
	Reaction          EnemyReaction
	RetaliationDamage int
}

// ItemUseResult carries the resolved outcome of using an item. An empty
// TargetName means the item was used on the player.
type ItemUseResult struct {
	ItemName   string
	TargetName string
	Success    bool
}

// SkillUseResult carries the resolved outcome of using a skill.
type SkillUseResult struct {
	Tier           SuccessTier
	SkillName      string
	Effect         SkillEffect
	EnemyName      string
	Healed         int
	Damage         int
	Lifesteal      int
	BackfireDamage int
}

// ActionResult is a tagged union over the action kinds the narrator handles.
// Exactly the variant matching Kind is set; the rest are nil.
type ActionResult struct {
	Kind   ActionKind
	Attack *AttackResult
	Item   *ItemUseResult
	Skill  *SkillUseResult
}

// NarrateAction renders a resolved action as one narrative string. The chunk
// supplies sensory context only. Unrecognised kinds (or a missing variant)
// degrade to a fixed phrase, never an error.
func NarrateAction(src entropy.Source, result ActionResult, chunk *world.Chunk, translate TranslateFunc) string {
	switch result.Kind {
	case ActionAttack:
		if result.Attack != nil {
			return narrateAttack(src, *result.Attack, chunk, translate)
		}
	case ActionUseItem:
		if result.Item != nil {
			return narrateItemUse(src, *result.Item, chunk, translate)
		}
	case ActionUseSkill:
		if result.Skill != nil {
			return narrateSkillUse(*result.Skill, translate)
		}
	case ActionUnknown:
	}
	return translate("actionUnknown", nil)
}

func narrateAttack(src entropy.Source, atk AttackResult, chunk *world.Chunk, translate TranslateFunc) string {
	repl := map[string]string{"enemy": atk.EnemyName}

	parts := []string{translate(attackKey(atk.Tier), repl)}

	if atk.Damage > 0 {
		parts = append(parts, translate("attackDamage", map[string]string{
			"damage": strconv.Itoa(atk.Damage),
			"enemy":  atk.EnemyName,
		}))
	}

	switch atk.Reaction {
	case ReactionDefeated:
		parts = append(parts, translate("enemyDefeated", repl))
	case ReactionFled:
		parts = append(parts, translate("enemyFled", repl))
	case ReactionRetaliated:
		parts = append(parts, translate("enemyRetaliate", map[string]string{
			"enemy":  atk.EnemyName,
			"damage": strconv.Itoa(atk.RetaliationDamage),
		}))
	case ReactionPrepares:
		parts = append(parts, translate("enemyPrepares", repl))
	}

	parts = append(parts, sensoryFeedback(src, chunk, translate))

	return strings.Join(parts, " ")
}

// attackKey maps a success tier to its narrative key. GreatSuccess shares
// the plain success phrasing; only critical outcomes get their own voice.
func attackKey(tier SuccessTier) string {
	switch tier {
	case TierCriticalFailure:
		return "attackCritFail"
	case TierFailure:
		return "attackFail"
	case TierCriticalSuccess:
		return "attackCritSuccess"
	default: // TierSuccess, TierGreatSuccess
		return "attackSuccess"
	}
}

func narrateItemUse(src entropy.Source, use ItemUseResult, chunk *world.Chunk, translate TranslateFunc) string {
	var key string
	repl := map[string]string{"item": use.ItemName}

	if use.TargetName == "" {
		key = "itemSelfSuccess"
		if !use.Success {
			key = "itemSelfFailure"
		}
	} else {
		repl["target"] = use.TargetName
		key = "itemTargetSuccess"
		if !use.Success {
			key = "itemTargetFailure"
		}
	}

	return translate(key, repl) + " " + sensoryFeedback(src, chunk, translate)
}

func narrateSkillUse(use SkillUseResult, translate TranslateFunc) string {
	repl := map[string]string{"skill": use.SkillName}

	switch use.Tier {
	case TierCriticalFailure:
		repl["damage"] = strconv.Itoa(use.BackfireDamage)
		return translate("skillBackfire", repl)
	case TierFailure:
		return translate("skillFizzle", repl)
	}

	switch use.Effect {
	case EffectHeal:
		repl["amount"] = strconv.Itoa(use.Healed)
		return translate("skillHeal", repl)
	case EffectDamage:
		repl["enemy"] = use.EnemyName
		repl["damage"] = strconv.Itoa(use.Damage)
		out := translate("skillDamage", repl)
		if use.Lifesteal > 0 {
			out += " " + translate("skillLifesteal", map[string]string{
				"amount": strconv.Itoa(use.Lifesteal),
			})
		}
		return out
	}

	return translate("actionUnknown", nil)
}

// sensoryFeedback picks one environmental flourish among the axes whose
// condition actually holds for the chunk: temperature extremes, low light,
// and saturated moisture. When none apply a neutral ambient phrase is used,
// so the narration never claims darkness at noon.
func sensoryFeedback(src entropy.Source, chunk *world.Chunk, translate TranslateFunc) string {
	var keys []string

	if chunk.Temperature != nil {
		switch t := *chunk.Temperature; {
		case t >= 35:
			keys = append(keys, "sensoryHeat")
		case t <= 0:
			keys = append(keys, "sensoryCold")
		}
	}
	if chunk.LightLevel <= 10 {
		keys = append(keys, "sensoryDark")
	}
	if chunk.Moisture >= 80 {
		keys = append(keys, "sensoryDamp")
	}

	if len(keys) == 0 {
		return translate("sensoryAmbient", nil)
	}
	return translate(entropy.Pick(src, keys), nil)
}
