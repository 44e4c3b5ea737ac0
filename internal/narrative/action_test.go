package narrative

import (
	"strings"
	"testing"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/entropy"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

func TestNarrateAction_CriticalFailureAttack(t *testing.T) {
	t.Parallel()

	translate := testTranslate(t)
	result := ActionResult{
		Kind: ActionAttack,
		Attack: &AttackResult{
			Tier:              TierCriticalFailure,
			EnemyName:         "wolf",
			Reaction:          ReactionRetaliated,
			RetaliationDamage: 3,
		},
	}

	got := NarrateAction(entropy.New(1), result, forestChunk(), translate)
	if !strings.Contains(got, "wolf") {
		t.Errorf("narration does not name the enemy: %q", got)
	}
	if !strings.Contains(got, "3") {
		t.Errorf("narration does not mention retaliation damage: %q", got)
	}
	if strings.Contains(got, translate("attackDamage", map[string]string{"damage": "0", "enemy": "wolf"})) {
		t.Errorf("zero-damage phrase in a failed attack: %q", got)
	}
}

func TestNarrateAction_SuccessTiersShareKey(t *testing.T) {
	t.Parallel()

	translate := testTranslate(t)
	base := AttackResult{EnemyName: "boar", Damage: 5, Reaction: ReactionPrepares}

	success := base
	success.Tier = TierSuccess
	great := base
	great.Tier = TierGreatSuccess

	a := NarrateAction(entropy.New(1), ActionResult{Kind: ActionAttack, Attack: &success}, forestChunk(), translate)
	b := NarrateAction(entropy.New(1), ActionResult{Kind: ActionAttack, Attack: &great}, forestChunk(), translate)
	if a != b {
		t.Errorf("success and great success narrate differently:\n%q\n%q", a, b)
	}
}

func TestNarrateAction_SensoryMatchesTrueAxes(t *testing.T) {
	t.Parallel()

	translate := testTranslate(t)
	result := ActionResult{
		Kind:   ActionAttack,
		Attack: &AttackResult{Tier: TierSuccess, EnemyName: "bat", Damage: 2, Reaction: ReactionFled},
	}

	// Dark cave: low light is the only true axis, so the dark phrase is
	// the only possible flourish.
	cave := &world.Chunk{Terrain: world.TerrainCave, LightLevel: 5, Moisture: 50}
	got := NarrateAction(entropy.New(1), result, cave, translate)
	if !strings.Contains(got, translate("sensoryDark", nil)) {
		t.Errorf("dark cave narration lacks the dark flourish: %q", got)
	}

	// Bright mild meadow: no axis is true, so the neutral phrase is used
	// and darkness is never claimed.
	temp := 20.0
	meadow := &world.Chunk{Terrain: world.TerrainGrassland, LightLevel: 85, Moisture: 40, Temperature: &temp}
	got = NarrateAction(entropy.New(1), result, meadow, translate)
	if !strings.Contains(got, translate("sensoryAmbient", nil)) {
		t.Errorf("mild meadow narration lacks the neutral flourish: %q", got)
	}
	if strings.Contains(got, translate("sensoryDark", nil)) {
		t.Errorf("narration claims darkness in a bright meadow: %q", got)
	}
}

func TestNarrateAction_ItemUse(t *testing.T) {
	t.Parallel()

	translate := testTranslate(t)

	self := ActionResult{Kind: ActionUseItem, Item: &ItemUseResult{ItemName: "medicinal herbs", Success: true}}
	got := NarrateAction(entropy.New(1), self, forestChunk(), translate)
	if !strings.Contains(got, "medicinal herbs") {
		t.Errorf("self item use does not name the item: %q", got)
	}

	target := ActionResult{Kind: ActionUseItem, Item: &ItemUseResult{ItemName: "berries", TargetName: "boar", Success: false}}
	got = NarrateAction(entropy.New(1), target, forestChunk(), translate)
	if !strings.Contains(got, "boar") {
		t.Errorf("targeted item use does not name the target: %q", got)
	}
}

func TestNarrateAction_SkillOutcomes(t *testing.T) {
	t.Parallel()

	translate := testTranslate(t)

	backfire := ActionResult{Kind: ActionUseSkill, Skill: &SkillUseResult{
		Tier: TierCriticalFailure, SkillName: "firebolt", BackfireDamage: 4}}
	got := NarrateAction(entropy.New(1), backfire, forestChunk(), translate)
	if !strings.Contains(got, "firebolt") || !strings.Contains(got, "4") {
		t.Errorf("backfire narration incomplete: %q", got)
	}

	drain := ActionResult{Kind: ActionUseSkill, Skill: &SkillUseResult{
		Tier: TierSuccess, SkillName: "leech", Effect: EffectDamage,
		EnemyName: "wolf", Damage: 6, Lifesteal: 2}}
	got = NarrateAction(entropy.New(1), drain, forestChunk(), translate)
	if !strings.Contains(got, translate("skillLifesteal", map[string]string{"amount": "2"})) {
		t.Errorf("lifesteal phrase missing: %q", got)
	}

	heal := ActionResult{Kind: ActionUseSkill, Skill: &SkillUseResult{
		Tier: TierSuccess, SkillName: "mend", Effect: EffectHeal, Healed: 9}}
	got = NarrateAction(entropy.New(1), heal, forestChunk(), translate)
	if !strings.Contains(got, "9") {
		t.Errorf("heal narration lacks the amount: %q", got)
	}
}

func TestNarrateAction_UnknownKind(t *testing.T) {
	t.Parallel()

	translate := testTranslate(t)

	got := NarrateAction(entropy.New(1), ActionResult{}, forestChunk(), translate)
	if want := translate("actionUnknown", nil); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// A kind with its variant missing degrades the same way.
	got = NarrateAction(entropy.New(1), ActionResult{Kind: ActionAttack}, forestChunk(), translate)
	if want := translate("actionUnknown", nil); got != want {
		t.Errorf("missing variant: got %q, want %q", got, want)
	}
}
