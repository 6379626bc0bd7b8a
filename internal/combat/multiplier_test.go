package combat

import (
	"testing"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/boss"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"
	"github.com/stretchr/testify/assert"
)

func TestDamageMultiplier_NoBonuses(t *testing.T) {
	assert.Equal(t, 1.0, DamageMultiplier(Bonuses{}, DefaultRates()))
}

func TestDamageMultiplier_SumsEverySource(t *testing.T) {
	b := Bonuses{
		Souls:          2,                                                // 20
		Divinity:       1,                                                // 25
		Talents:        map[string]int{"sharpened_blades": 3, "nope": 9}, // 15
		Constellations: map[string]int{"the_titan": 1},                   // 8
		Artifacts:      []string{"cracked_crown", "missing"},             // 15
		Cards:          map[string]int{"slime": 4, "bat": 1},             // 5
		Achievements:   []string{"a", "b"},                               // 10
		Pets: []Pet{
			{ID: "cat", BonusPct: 7, Active: true},
			{ID: "dog", BonusPct: 50, Active: false},
		}, // 7
	}
	assert.InDelta(t, 2.05, DamageMultiplier(b, DefaultRates()), 1e-9)
}

func TestDamageMultiplier_BossArmorHasFloor(t *testing.T) {
	b := Bonuses{Boss: boss.Boss{Stats: hero.Stats{Defense: 20}}}
	assert.InDelta(t, 0.8, DamageMultiplier(b, DefaultRates()), 1e-9)

	b.Boss.Stats.Defense = 5000
	assert.Equal(t, 0.1, DamageMultiplier(b, DefaultRates()))
}

func TestDamageMultiplier_Unbounded(t *testing.T) {
	b := Bonuses{Souls: 1_000_000}
	assert.Equal(t, 100001.0, DamageMultiplier(b, DefaultRates()))
}

func TestActiveSynergies(t *testing.T) {
	party := []hero.Hero{
		{Class: hero.Warrior, Element: hero.Fire},
		{Class: hero.Healer, Element: hero.Fire},
		{Class: hero.Mage, Element: hero.Ice},
	}
	ids := []string{}
	for _, s := range ActiveSynergies(party) {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"inferno", "bulwark", "tempo"}, ids)
	assert.InDelta(t, 0.10, AttackSpeedBonus(ActiveSynergies(party)), 1e-9)

	assert.Empty(t, ActiveSynergies(nil))
	assert.Equal(t, 0.0, AttackSpeedBonus(nil))
}
