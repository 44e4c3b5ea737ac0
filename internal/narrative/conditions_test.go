package narrative

import (
	"testing"

	"github.com/ngoccc0/dreamland-engine-sub007/internal/vocab"
	"github.com/ngoccc0/dreamland-engine-sub007/internal/world"
)

func fp(v float64) *float64 { return &v }

func TestCheckCondition_NilPasses(t *testing.T) {
	t.Parallel()

	if !CheckCondition(nil, &world.Chunk{}, nil, nil) {
		t.Error("nil condition should always pass")
	}
}

func TestCheckCondition_PlayerHealth(t *testing.T) {
	t.Parallel()

	cond := &vocab.Condition{PlayerHealth: &vocab.Range{Min: fp(50), Max: fp(100)}}
	chunk := &world.Chunk{}

	if CheckCondition(cond, chunk, &PlayerState{HP: 30}, nil) {
		t.Error("hp 30 outside [50,100] should fail")
	}
	if !CheckCondition(cond, chunk, &PlayerState{HP: 50}, nil) {
		t.Error("hp 50 on the boundary should pass")
	}
	// Without a player snapshot the stat condition is skipped, not failed.
	if !CheckCondition(cond, chunk, nil, nil) {
		t.Error("nil player should skip player-stat conditions")
	}
}

func TestCheckCondition_TimeOfDay(t *testing.T) {
	t.Parallel()

	cond := &vocab.Condition{TimeOfDay: "night"}

	if CheckCondition(cond, &world.Chunk{GameTime: 720}, nil, nil) {
		t.Error("noon should not satisfy a night condition")
	}
	if !CheckCondition(cond, &world.Chunk{GameTime: 0}, nil, nil) {
		t.Error("midnight should satisfy a night condition")
	}
}

func TestCheckCondition_SoilTypes(t *testing.T) {
	t.Parallel()

	cond := &vocab.Condition{SoilTypes: []string{"peaty", "loamy"}}

	if !CheckCondition(cond, &world.Chunk{SoilType: "Peaty"}, nil, nil) {
		t.Error("soil match should be case-insensitive")
	}
	if CheckCondition(cond, &world.Chunk{SoilType: "sandy"}, nil, nil) {
		t.Error("sandy should not match")
	}
}

func TestCheckCondition_RequiredEnemyResolvesName(t *testing.T) {
	t.Parallel()

	chunk := &world.Chunk{Enemy: &world.Enemy{Type: "wolf_gray"}}
	resolve := func(id string) string {
		if id == "wolf_gray" {
			return "gray wolf"
		}
		return id
	}

	if !CheckCondition(&vocab.Condition{RequiredEnemy: "wolf_gray"}, chunk, nil, nil) {
		t.Error("raw id should match without a resolver")
	}
	if !CheckCondition(&vocab.Condition{RequiredEnemy: "Gray Wolf"}, chunk, nil, resolve) {
		t.Error("resolved name should match case-insensitively")
	}
	if CheckCondition(&vocab.Condition{RequiredEnemy: "bear"}, chunk, nil, resolve) {
		t.Error("absent enemy should fail")
	}
}

func TestCheckCondition_AttributeRanges(t *testing.T) {
	t.Parallel()

	chunk := &world.Chunk{DangerLevel: 55}

	pass := &vocab.Condition{Attributes: map[string]vocab.Range{"dangerLevel": {Min: fp(40)}}}
	if !CheckCondition(pass, chunk, nil, nil) {
		t.Error("danger 55 >= 40 should pass")
	}

	fail := &vocab.Condition{Attributes: map[string]vocab.Range{"dangerLevel": {Max: fp(40)}}}
	if CheckCondition(fail, chunk, nil, nil) {
		t.Error("danger 55 > max 40 should fail")
	}

	// Unknown attribute names impose no constraint.
	unknown := &vocab.Condition{Attributes: map[string]vocab.Range{"gravity": {Min: fp(99)}}}
	if !CheckCondition(unknown, chunk, nil, nil) {
		t.Error("unknown attribute should be ignored")
	}

	// Optional attributes that are unset impose no constraint either.
	unset := &vocab.Condition{Attributes: map[string]vocab.Range{"temperature": {Min: fp(30)}}}
	if !CheckCondition(unset, chunk, nil, nil) {
		t.Error("nil temperature should be ignored")
	}
}
