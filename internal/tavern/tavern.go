package tavern

import (
	"math"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/loot"
	"github.com/google/uuid"
)

const MaxRoster = 12

type Pricing struct {
	BaseCost   float64
	CostGrowth float64
}

func DefaultPricing() Pricing {
	return Pricing{BaseCost: 100, CostGrowth: 1.15}
}

// Cost is the price of the next summon after `summons` previous ones.
func (p Pricing) Cost(summons int) int64 {
	if p.BaseCost <= 0 {
		p.BaseCost = 100
	}
	if p.CostGrowth < 1 {
		p.CostGrowth = 1
	}
	raw := p.BaseCost * math.Pow(p.CostGrowth, float64(max(0, summons)))
	// 100 * 1.15 lands on 114.999...; nudge before flooring
	return int64(math.Floor(raw + 1e-9))
}

// RNG is what a summon needs to roll class, name and element.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

var classTable = loot.Table{
	{Kind: string(hero.Warrior), Weight: 25},
	{Kind: string(hero.Rogue), Weight: 20},
	{Kind: string(hero.Ranger), Weight: 20},
	{Kind: string(hero.Mage), Weight: 15},
	{Kind: string(hero.Healer), Weight: 12},
	{Kind: string(hero.Paladin), Weight: 8},
}

var elements = []hero.Element{hero.Fire, hero.Ice, hero.Nature, hero.Light, hero.Shadow}

var names = []string{"Orin", "Tessa", "Vale", "Mira", "Dunn", "Isolde", "Rook", "Wren", "Hale", "Sable", "Corwin", "Ysra"}

// Summon rolls a fresh level 1 recruit. Recruits arrive unlocked and idle.
func Summon(rng RNG) hero.Hero {
	class := hero.Class(classTable.Pick(rng).Kind)
	h := baseHero(class)
	h.ID = uuid.NewString()
	h.Name = names[rng.Intn(len(names))]
	h.Element = elements[rng.Intn(len(elements))]
	h.Unlocked = true
	h.Assignment = hero.AssignNone
	return h
}

// ShouldAutoSummon is the per-tick gate for the tavern automation upgrade.
func ShouldAutoSummon(enabled bool, gold, cost int64, roster int, chance float64, rng RNG) bool {
	if !enabled || roster >= MaxRoster || gold < cost {
		return false
	}
	return rng.Float64() < chance
}
