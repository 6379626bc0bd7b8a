package combat

import (
	"testing"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/boss"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fighter(id string, class hero.Class, atk float64) hero.Hero {
	return hero.Hero{
		ID: id, Class: class, Level: 1, MaxXP: 100, Unlocked: true,
		Assignment: hero.AssignCombat,
		Stats:      hero.Stats{HP: 100, MaxHP: 100, Attack: atk, Defense: 2},
	}
}

func TestProcessTurn_EmptyParty(t *testing.T) {
	res := ProcessTurn(TurnInput{Boss: boss.New(), Multiplier: 1})
	assert.Equal(t, 0.0, res.TotalDamage)
	assert.Nil(t, res.Heroes)
}

func TestProcessTurn_BaseDamageAndRetaliation(t *testing.T) {
	tired := fighter("h1", hero.Warrior, 15)
	tired.Fatigue = hero.MaxFatigue
	in := TurnInput{
		Heroes:     []hero.Hero{tired, fighter("h2", hero.Rogue, 10)},
		Boss:       boss.New(),
		Multiplier: 2,
		Variance:   0.1,
		TickMs:     1000,
		Crit:       CritConfig{Chance: 0.1, Mult: 2},
		RNG:        &FixedRNG{Ints: []int{1}},
	}
	res := ProcessTurn(in)

	// attack x multiplier x (1 +- variance); fatigue does not scale damage
	assert.InDelta(t, 50.0, res.TotalDamage, 1e-9)
	assert.Equal(t, 0, res.Crits)
	require.Len(t, res.Heroes, 2)
	// boss attack 8 - defense 2 lands on the second hero
	assert.Equal(t, 100.0, res.Heroes[0].Stats.HP)
	assert.Equal(t, 94.0, res.Heroes[1].Stats.HP)
	assert.Equal(t, 100.0, in.Heroes[1].Stats.HP, "input untouched")
}

func TestProcessTurn_CritVarianceAndUltimate(t *testing.T) {
	in := TurnInput{
		Heroes:        []hero.Hero{fighter("h1", hero.Warrior, 10)},
		Boss:          boss.New(),
		Multiplier:    1,
		Variance:      0.5,
		UltimateReady: true,
		UltimateMult:  3,
		Crit:          CritConfig{Chance: 0.5, Mult: 2},
		RNG:           &FixedRNG{Floats: []float64{1.0, 0.1}},
	}
	res := ProcessTurn(in)
	// 10 * 1.5 variance * 2 crit * 3 ultimate
	assert.InDelta(t, 90.0, res.TotalDamage, 1e-9)
	assert.Equal(t, 1, res.Crits)
}

func TestProcessTurn_SynergiesAndPets(t *testing.T) {
	a := fighter("a", hero.Mage, 10)
	a.Element = hero.Fire
	b := fighter("b", hero.Mage, 10)
	b.Element = hero.Ice
	in := TurnInput{
		Heroes:     []hero.Hero{a, b},
		Boss:       boss.New(),
		Multiplier: 1,
		Pets:       []Pet{{ID: "wolf", Attack: 5, Active: true}, {ID: "idle", Attack: 100}},
		Synergies: []Synergy{
			{Kind: SynergyBurn, Value: 0.5},
			{Kind: SynergyFreeze, Value: 2},
			{Kind: SynergyMitigation, Value: 0.5},
		},
	}
	res := ProcessTurn(in)
	// (10 + 5 burn) + 10 + 5 pet, doubled by freeze
	assert.InDelta(t, 60.0, res.TotalDamage, 1e-9)
	assert.InDelta(t, 3.0, res.Retaliation, 1e-9)
}

func TestProcessTurn_SkillsFireOnCooldown(t *testing.T) {
	w := fighter("w", hero.Warrior, 10)
	w.Skill = &hero.Skill{Name: "Cleave", Kind: hero.SkillDamage, UnlockLevel: 1, CooldownMs: 2000, RemainingMs: 2000, Power: 3}
	heal := fighter("c", hero.Healer, 0)
	heal.Stats.Magic = 10
	heal.Stats.HP = 50
	heal.Skill = &hero.Skill{Name: "Mend", Kind: hero.SkillHeal, UnlockLevel: 1, CooldownMs: 1000, Power: 2}

	in := TurnInput{Heroes: []hero.Hero{w, heal}, Boss: boss.New(), Multiplier: 1, TickMs: 1000, SpeedFactor: 1}
	in.Boss.Stats.Attack = 0

	res := ProcessTurn(in)
	assert.InDelta(t, 10.0, res.TotalDamage, 1e-9)
	assert.Equal(t, []string{"c:Mend"}, res.SkillsFired)
	assert.Equal(t, 70.0, res.Heroes[1].Stats.HP)
	assert.Equal(t, 1000.0, res.Heroes[0].Skill.RemainingMs)

	in.Heroes = res.Heroes
	res = ProcessTurn(in)
	assert.InDelta(t, 40.0, res.TotalDamage, 1e-9)
	assert.Contains(t, res.SkillsFired, "w:Cleave")
	assert.Equal(t, 2000.0, res.Heroes[0].Skill.RemainingMs)
}

func TestProcessTurn_GambitsRetreatAndDefend(t *testing.T) {
	hurt := fighter("hurt", hero.Rogue, 50)
	hurt.Stats.HP = 10
	hurt.Gambits = []hero.Gambit{{Condition: hero.WhenHPBelowPct, Threshold: 25, Action: hero.ActRetreat}}
	tank := fighter("tank", hero.Warrior, 50)
	tank.Gambits = []hero.Gambit{{Condition: hero.WhenAlways, Action: hero.ActDefend}}

	res := ProcessTurn(TurnInput{Heroes: []hero.Hero{hurt, tank}, Boss: boss.New(), Multiplier: 1})

	assert.Equal(t, 0.0, res.TotalDamage)
	assert.Equal(t, []string{"hurt"}, res.Retreated)
	assert.Equal(t, hero.AssignCampfire, res.Heroes[0].Assignment)
	// only the tank is a target; (8-2)/2
	assert.Equal(t, 97.0, res.Heroes[1].Stats.HP)
}

func TestProcessTurn_RetaliationKills(t *testing.T) {
	h := fighter("glass", hero.Mage, 1)
	h.Stats.HP = 3
	h.Stats.Defense = 0
	res := ProcessTurn(TurnInput{Heroes: []hero.Hero{h}, Boss: boss.New(), Multiplier: 1})

	assert.True(t, res.Heroes[0].IsDead)
	assert.Equal(t, 0.0, res.Heroes[0].Stats.HP)
	assert.Equal(t, []string{"glass"}, res.Deaths)
}

func TestProcessTurn_LethalTickHasNoRetaliation(t *testing.T) {
	h := fighter("big", hero.Warrior, 500)
	h.Stats.HP = 1
	res := ProcessTurn(TurnInput{Heroes: []hero.Hero{h}, Boss: boss.New(), Multiplier: 1})

	assert.GreaterOrEqual(t, res.TotalDamage, 200.0)
	assert.False(t, res.Heroes[0].IsDead)
	assert.Empty(t, res.Deaths)
}
