package combat

import (
	"math"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/boss"
)

// BonusDef is a percentage bonus granted per level (talents, constellations)
// or per ownership (artifacts).
type BonusDef struct {
	Name string  `json:"name"`
	Pct  float64 `json:"pct"`
}

var Talents = map[string]BonusDef{
	"sharpened_blades": {Name: "Sharpened Blades", Pct: 5},
	"battle_hymn":      {Name: "Battle Hymn", Pct: 3},
	"arcane_focus":     {Name: "Arcane Focus", Pct: 4},
	"veterans_edge":    {Name: "Veteran's Edge", Pct: 10},
}

var Constellations = map[string]BonusDef{
	"the_forge":  {Name: "The Forge", Pct: 2},
	"the_hunter": {Name: "The Hunter", Pct: 3},
	"the_titan":  {Name: "The Titan", Pct: 8},
}

var Artifacts = map[string]BonusDef{
	"cracked_crown":   {Name: "Cracked Crown", Pct: 15},
	"ember_heart":     {Name: "Ember Heart", Pct: 25},
	"void_compass":    {Name: "Void Compass", Pct: 40},
	"starlit_chalice": {Name: "Starlit Chalice", Pct: 60},
}

type Pet struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	BonusPct float64 `json:"bonusPct"`
	Attack   float64 `json:"attack"`
	Active   bool    `json:"active"`
}

// Bonuses gathers every source that feeds the damage multiplier.
type Bonuses struct {
	Souls          int64
	Divinity       int64
	Talents        map[string]int
	Constellations map[string]int
	Artifacts      []string
	Boss           boss.Boss
	Cards          map[string]int
	Achievements   []string
	Pets           []Pet
}

// Rates are the percentage points each unit of a source is worth.
type Rates struct {
	SoulPct        float64
	DivinityPct    float64
	CardPct        float64
	AchievementPct float64
	BossDefensePct float64
	MinMultiplier  float64
}

func DefaultRates() Rates {
	return Rates{
		SoulPct:        10,
		DivinityPct:    25,
		CardPct:        1,
		AchievementPct: 5,
		BossDefensePct: 1,
		MinMultiplier:  0.1,
	}
}

// DamageMultiplier sums every bonus as a fraction and returns 1 + total.
// There is no upper cap; the floor only keeps armored bosses from zeroing
// out damage.
func DamageMultiplier(b Bonuses, r Rates) float64 {
	pct := 0.0
	pct += float64(b.Souls) * r.SoulPct
	pct += float64(b.Divinity) * r.DivinityPct

	for id, lvl := range b.Talents {
		if def, ok := Talents[id]; ok && lvl > 0 {
			pct += float64(lvl) * def.Pct
		}
	}
	for id, lvl := range b.Constellations {
		if def, ok := Constellations[id]; ok && lvl > 0 {
			pct += float64(lvl) * def.Pct
		}
	}
	for _, id := range b.Artifacts {
		if def, ok := Artifacts[id]; ok {
			pct += def.Pct
		}
	}
	for _, n := range b.Cards {
		if n > 0 {
			pct += float64(n) * r.CardPct
		}
	}
	pct += float64(len(b.Achievements)) * r.AchievementPct
	for _, p := range b.Pets {
		if p.Active {
			pct += p.BonusPct
		}
	}
	pct -= b.Boss.Stats.Defense * r.BossDefensePct

	return math.Max(r.MinMultiplier, 1+pct/100)
}
