package tavern

import (
	"testing"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/combat"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingCost(t *testing.T) {
	p := DefaultPricing()
	assert.Equal(t, int64(100), p.Cost(0))
	assert.Equal(t, int64(115), p.Cost(1))
	assert.Equal(t, int64(132), p.Cost(2))
	assert.Equal(t, int64(100), p.Cost(-4))
	assert.Equal(t, int64(100), Pricing{}.Cost(10))
}

func TestSummon(t *testing.T) {
	// class roll 30 -> rogue (25..44), name 2, element 1
	h := Summon(&combat.FixedRNG{Ints: []int{30, 2, 1}})

	assert.Equal(t, hero.Rogue, h.Class)
	assert.Equal(t, "Vale", h.Name)
	assert.Equal(t, hero.Ice, h.Element)
	assert.True(t, h.Unlocked)
	assert.Equal(t, hero.AssignNone, h.Assignment)
	assert.Equal(t, 1, h.Level)
	assert.Equal(t, 100, h.MaxXP)
	assert.NotEmpty(t, h.ID)
	require.NotNil(t, h.Skill)
	assert.Equal(t, "Backstab", h.Skill.Name)
}

func TestShouldAutoSummon(t *testing.T) {
	rng := &combat.FixedRNG{Float: 0.05}
	assert.True(t, ShouldAutoSummon(true, 500, 100, 3, 0.1, rng))
	assert.False(t, ShouldAutoSummon(false, 500, 100, 3, 0.1, rng))
	assert.False(t, ShouldAutoSummon(true, 99, 100, 3, 0.1, rng))
	assert.False(t, ShouldAutoSummon(true, 500, 100, MaxRoster, 0.1, rng))
	assert.False(t, ShouldAutoSummon(true, 500, 100, 3, 0.01, rng))
}

func TestTemplates(t *testing.T) {
	ts := Templates()
	require.Len(t, ts, 6)

	fighting := 0
	seen := map[string]bool{}
	for _, h := range ts {
		assert.False(t, seen[h.ID], "duplicate id %s", h.ID)
		seen[h.ID] = true
		assert.NotEmpty(t, h.Element)
		assert.NotEmpty(t, h.Gambits)
		if h.Fighting() {
			fighting++
		}
	}
	assert.Equal(t, 3, fighting)

	// fresh copies every call
	ts[0].Gambits[0].Action = hero.ActRetreat
	assert.Equal(t, hero.ActDefend, Templates()[0].Gambits[0].Action)
}
