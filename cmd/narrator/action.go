package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/narrative"
)

var (
	actionX           int
	actionY           int
	actionTier        string
	actionEnemy       string
	actionDamage      int
	actionReaction    string
	actionRetaliation int
	actionItem        string
	actionTarget      string
	actionFailed      bool
	actionSkill       string
	actionEffect      string
	actionAmount      int
	actionLifesteal   int
)

var actionCmd = &cobra.Command{
	Use:   "action <attack|item|skill>",
	Short: "Narrate an already-resolved action outcome",
	Long: `Render the prose for an action whose mechanics have already been
resolved. The flags describe the outcome; the chunk at the given coordinates
supplies sensory context.

Examples:
  narrator action attack --enemy wolf --tier success --damage 7 --reaction retaliated --retaliation 3
  narrator action item --item herb_bundle
  narrator action skill --skill firebolt --effect damage --enemy wolf --damage 12`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"attack", "item", "skill"},
	RunE:      runAction,
}

func init() {
	rootCmd.AddCommand(actionCmd)
	actionCmd.Flags().IntVar(&actionX, "x", 0, "chunk x coordinate")
	actionCmd.Flags().IntVar(&actionY, "y", 0, "chunk y coordinate")
	actionCmd.Flags().StringVar(&actionTier, "tier", "success", "outcome tier: critfail, fail, success, great, critsuccess")
	actionCmd.Flags().StringVar(&actionEnemy, "enemy", "", "enemy name")
	actionCmd.Flags().IntVar(&actionDamage, "damage", 0, "damage dealt")
	actionCmd.Flags().StringVar(&actionReaction, "reaction", "prepares", "enemy reaction: prepares, defeated, fled, retaliated")
	actionCmd.Flags().IntVar(&actionRetaliation, "retaliation", 0, "retaliation damage taken")
	actionCmd.Flags().StringVar(&actionItem, "item", "", "item id or name")
	actionCmd.Flags().StringVar(&actionTarget, "target", "", "item target (empty = self)")
	actionCmd.Flags().BoolVar(&actionFailed, "failed", false, "the item use failed")
	actionCmd.Flags().StringVar(&actionSkill, "skill", "", "skill name")
	actionCmd.Flags().StringVar(&actionEffect, "effect", "damage", "skill effect: heal, damage")
	actionCmd.Flags().IntVar(&actionAmount, "amount", 0, "amount healed")
	actionCmd.Flags().IntVar(&actionLifesteal, "lifesteal", 0, "health drained from the target")
}

func runAction(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}
	defer e.close()

	result, err := buildResult(args[0], e)
	if err != nil {
		return err
	}

	chunk := e.gen.ChunkAt(actionX, actionY, flagTick)
	prose := narrative.NarrateAction(e.src, result, chunk, e.translate)

	printScene(args[0], "", prose)
	e.record(chunk.Terrain, "action", prose)
	return nil
}

func buildResult(kind string, e *engine) (narrative.ActionResult, error) {
	switch kind {
	case "attack":
		tier, err := parseTier(actionTier)
		if err != nil {
			return narrative.ActionResult{}, err
		}
		reaction, err := parseReaction(actionReaction)
		if err != nil {
			return narrative.ActionResult{}, err
		}
		return narrative.ActionResult{
			Kind: narrative.ActionAttack,
			Attack: &narrative.AttackResult{
				Tier:              tier,
				EnemyName:         e.resolveName(actionEnemy),
				Damage:            actionDamage,
				Reaction:          reaction,
				RetaliationDamage: actionRetaliation,
			},
		}, nil

	case "item":
		return narrative.ActionResult{
			Kind: narrative.ActionUseItem,
			Item: &narrative.ItemUseResult{
				ItemName:   e.resolveName(actionItem),
				TargetName: actionTarget,
				Success:    !actionFailed,
			},
		}, nil

	case "skill":
		tier, err := parseTier(actionTier)
		if err != nil {
			return narrative.ActionResult{}, err
		}
		effect := narrative.EffectDamage
		if actionEffect == "heal" {
			effect = narrative.EffectHeal
		}
		return narrative.ActionResult{
			Kind: narrative.ActionUseSkill,
			Skill: &narrative.SkillUseResult{
				Tier:           tier,
				SkillName:      actionSkill,
				Effect:         effect,
				EnemyName:      e.resolveName(actionEnemy),
				Healed:         actionAmount,
				Damage:         actionDamage,
				Lifesteal:      actionLifesteal,
				BackfireDamage: actionRetaliation,
			},
		}, nil
	}

	return narrative.ActionResult{}, fmt.Errorf("unknown action kind %q", kind)
}

func parseTier(s string) (narrative.SuccessTier, error) {
	switch s {
	case "critfail":
		return narrative.TierCriticalFailure, nil
	case "fail":
		return narrative.TierFailure, nil
	case "success":
		return narrative.TierSuccess, nil
	case "great":
		return narrative.TierGreatSuccess, nil
	case "critsuccess":
		return narrative.TierCriticalSuccess, nil
	}
	return 0, fmt.Errorf("unknown tier %q", s)
}

func parseReaction(s string) (narrative.EnemyReaction, error) {
	switch s {
	case "prepares":
		return narrative.ReactionPrepares, nil
	case "defeated":
		return narrative.ReactionDefeated, nil
	case "fled":
		return narrative.ReactionFled, nil
	case "retaliated":
		return narrative.ReactionRetaliated, nil
	}
	return 0, fmt.Errorf("unknown reaction %q", s)
}
