package hero

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGainXP_RollsOverMultipleLevels(t *testing.T) {
	h := Hero{Class: Warrior, Level: 1, XP: 90, MaxXP: 100, Stats: Stats{MaxHP: 100, HP: 100, Attack: 15, Defense: 5}}

	levels := h.GainXP(250)

	// 340 -> 240 (maxXp 150) -> 90 (maxXp 225)
	assert.Equal(t, 2, levels)
	assert.Equal(t, 3, h.Level)
	assert.Equal(t, 90, h.XP)
	assert.Equal(t, 225, h.MaxXP)
	assert.Equal(t, 10, h.StatPoints)
	assert.Equal(t, 140.0, h.Stats.MaxHP)
	assert.Equal(t, 19.0, h.Stats.Attack)
	assert.Equal(t, 9.0, h.Stats.Defense)
}

func TestGainXP_ClassGrowth(t *testing.T) {
	cases := []struct {
		class Class
		want  Stats
	}{
		{Warrior, Stats{MaxHP: 20, Attack: 2, Defense: 2}},
		{Mage, Stats{MP: 15, MaxMP: 15, Magic: 4}},
		{Healer, Stats{MaxHP: 10, MP: 10, MaxMP: 10, Magic: 3}},
		{Rogue, Stats{MaxHP: 15, Attack: 2, Magic: 1}},
		{Paladin, Stats{MaxHP: 15, Attack: 2, Magic: 1}},
	}
	for _, tc := range cases {
		t.Run(string(tc.class), func(t *testing.T) {
			h := Hero{Class: tc.class, Level: 1, MaxXP: 100}
			require.Equal(t, 1, h.GainXP(100))
			assert.Equal(t, tc.want, h.Stats)
			assert.Equal(t, 0, h.XP)
			assert.Equal(t, 150, h.MaxXP)
		})
	}
}

func TestGainXP_IgnoresNonPositive(t *testing.T) {
	h := Hero{Level: 4, XP: 10, MaxXP: 100}
	assert.Equal(t, 0, h.GainXP(0))
	assert.Equal(t, 0, h.GainXP(-5))
	assert.Equal(t, 10, h.XP)
}

func TestTickFatigue_StaysInBounds(t *testing.T) {
	fighter := Hero{Assignment: AssignCombat, Fatigue: 99.95}
	miner := Hero{Assignment: AssignMine, Fatigue: 0.5}

	for i := 0; i < 5000; i++ {
		fighter.TickFatigue()
		miner.TickFatigue()
		require.GreaterOrEqual(t, fighter.Fatigue, 0.0)
		require.LessOrEqual(t, fighter.Fatigue, MaxFatigue)
		require.GreaterOrEqual(t, miner.Fatigue, 0.0)
		require.LessOrEqual(t, miner.Fatigue, MaxFatigue)
	}
	assert.Equal(t, MaxFatigue, fighter.Fatigue)
	assert.Equal(t, 0.0, miner.Fatigue)
}

func TestParseAssignment(t *testing.T) {
	a, err := ParseAssignment(" Mine ")
	require.NoError(t, err)
	assert.Equal(t, AssignMine, a)

	_, err = ParseAssignment("fishing")
	assert.ErrorIs(t, err, ErrInvalidAssignment)
}

func TestEffectiveStats_AddsEquipment(t *testing.T) {
	h := Hero{Stats: Stats{Attack: 10, Defense: 3}}
	_, err := h.Equipment.Set(SlotWeapon, &Item{ID: "sword", Type: SlotWeapon, Stat: "attack", Value: 5,
		Runes: []Rune{{Stat: "attack", Value: 1}, {Stat: "speed", Value: 2}}})
	require.NoError(t, err)
	_, err = h.Equipment.Set(SlotArmor, &Item{ID: "mail", Type: SlotArmor, Stat: "defense", Value: 4})
	require.NoError(t, err)

	s := h.EffectiveStats()
	assert.Equal(t, 16.0, s.Attack)
	assert.Equal(t, 7.0, s.Defense)
	assert.Equal(t, 2.0, s.Speed)
	assert.Equal(t, 10.0, h.Stats.Attack, "base stats untouched")

	_, err = h.Equipment.Set(Slot("ring"), nil)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestClone_DoesNotShare(t *testing.T) {
	h := Hero{
		Gambits:   []Gambit{{Condition: WhenAlways, Action: ActAttack}},
		Skill:     &Skill{Name: "Cleave", CooldownMs: 1000},
		Equipment: Equipment{Weapon: &Item{ID: "w", Runes: []Rune{{Stat: "attack", Value: 1}}}},
	}
	c := h.Clone()
	c.Gambits[0].Action = ActDefend
	c.Skill.RemainingMs = 50
	c.Equipment.Weapon.Runes[0].Value = 9

	assert.Equal(t, ActAttack, h.Gambits[0].Action)
	assert.Equal(t, 0.0, h.Skill.RemainingMs)
	assert.Equal(t, 1.0, h.Equipment.Weapon.Runes[0].Value)
}

func TestDecide_FirstMatchingGambit(t *testing.T) {
	h := Hero{
		Stats: Stats{HP: 20, MaxHP: 100},
		Gambits: []Gambit{
			{Condition: WhenBossHPBelowPct, Threshold: 10, Action: ActUseSkill},
			{Condition: WhenHPBelowPct, Threshold: 25, Action: ActRetreat},
			{Condition: WhenAlways, Action: ActAttack},
		},
	}
	assert.Equal(t, ActRetreat, h.Decide(500, 1000))
	assert.Equal(t, ActUseSkill, h.Decide(50, 1000))

	h.Stats.HP = 90
	assert.Equal(t, ActAttack, h.Decide(500, 1000))
	assert.Equal(t, ActAttack, Hero{}.Decide(1, 1))
}

func TestSkillAdvance(t *testing.T) {
	s := &Skill{Kind: SkillDamage, UnlockLevel: 3, CooldownMs: 3000, RemainingMs: 3000}

	assert.False(t, s.Advance(1, 5000, false), "locked below unlock level")
	assert.Equal(t, 0.0, s.RemainingMs)

	assert.True(t, s.Advance(3, 0, false))
	assert.Equal(t, 3000.0, s.RemainingMs)

	assert.False(t, s.Advance(3, 1000, false))
	assert.Equal(t, 2000.0, s.RemainingMs)
	assert.True(t, s.Advance(3, 1000, true), "forced fire")

	var none *Skill
	assert.False(t, none.Advance(10, 1000, true))
}

func TestSpendStatPoint(t *testing.T) {
	h := Hero{StatPoints: 1, Stats: Stats{Attack: 1}}
	assert.False(t, h.SpendStatPoint("luck"))
	assert.True(t, h.SpendStatPoint("attack"))
	assert.False(t, h.SpendStatPoint("attack"))
	assert.Equal(t, 2.0, h.Stats.Attack)
}
