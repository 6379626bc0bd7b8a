package combat

import "github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"

type SynergyKind string

const (
	SynergyBurn        SynergyKind = "burn"
	SynergyFreeze      SynergyKind = "freeze"
	SynergyMitigation  SynergyKind = "mitigation"
	SynergyAttackSpeed SynergyKind = "attack_speed"
)

type Synergy struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Kind  SynergyKind `json:"kind"`
	Value float64     `json:"value"`
}

type synergyRule struct {
	Synergy
	match func(party []hero.Hero) bool
}

var synergyRules = []synergyRule{
	{
		Synergy: Synergy{ID: "inferno", Name: "Inferno", Kind: SynergyBurn, Value: 0.25},
		match:   func(p []hero.Hero) bool { return countElement(p, hero.Fire) >= 2 },
	},
	{
		Synergy: Synergy{ID: "permafrost", Name: "Permafrost", Kind: SynergyFreeze, Value: 1.15},
		match:   func(p []hero.Hero) bool { return countElement(p, hero.Ice) >= 2 },
	},
	{
		Synergy: Synergy{ID: "bulwark", Name: "Bulwark", Kind: SynergyMitigation, Value: 0.30},
		match: func(p []hero.Hero) bool {
			return countClass(p, hero.Warrior) > 0 && countClass(p, hero.Healer) > 0
		},
	},
	{
		Synergy: Synergy{ID: "tempo", Name: "Tempo", Kind: SynergyAttackSpeed, Value: 0.10},
		match:   func(p []hero.Hero) bool { return distinctClasses(p) >= 3 },
	},
}

// ActiveSynergies evaluates the rule table against the fighting party.
func ActiveSynergies(party []hero.Hero) []Synergy {
	out := []Synergy{}
	for _, r := range synergyRules {
		if r.match(party) {
			out = append(out, r.Synergy)
		}
	}
	return out
}

// AttackSpeedBonus is the fraction shaved off the tick interval.
func AttackSpeedBonus(syn []Synergy) float64 {
	total := 0.0
	for _, s := range syn {
		if s.Kind == SynergyAttackSpeed {
			total += s.Value
		}
	}
	if total > 0.9 {
		total = 0.9
	}
	return total
}

func countElement(p []hero.Hero, e hero.Element) int {
	n := 0
	for _, h := range p {
		if h.Element == e {
			n++
		}
	}
	return n
}

func countClass(p []hero.Hero, c hero.Class) int {
	n := 0
	for _, h := range p {
		if h.Class == c {
			n++
		}
	}
	return n
}

func distinctClasses(p []hero.Hero) int {
	seen := map[hero.Class]bool{}
	for _, h := range p {
		seen[h.Class] = true
	}
	return len(seen)
}
