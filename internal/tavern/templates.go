package tavern

import "github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"

type classBase struct {
	emoji string
	stats hero.Stats
	skill hero.Skill
}

var classBases = map[hero.Class]classBase{
	hero.Warrior: {"⚔️", hero.Stats{HP: 150, MaxHP: 150, MP: 20, MaxMP: 20, Attack: 15, Defense: 5, Speed: 5, Magic: 1},
		hero.Skill{Name: "Cleave", Kind: hero.SkillDamage, UnlockLevel: 3, CooldownMs: 5000, Power: 2}},
	hero.Mage: {"🔮", hero.Stats{HP: 80, MaxHP: 80, MP: 100, MaxMP: 100, Attack: 12, Defense: 2, Speed: 6, Magic: 20},
		hero.Skill{Name: "Frostbolt", Kind: hero.SkillDamage, UnlockLevel: 1, CooldownMs: 4000, Power: 3}},
	hero.Healer: {"✨", hero.Stats{HP: 100, MaxHP: 100, MP: 80, MaxMP: 80, Attack: 6, Defense: 3, Speed: 5, Magic: 15},
		hero.Skill{Name: "Mend", Kind: hero.SkillHeal, UnlockLevel: 1, CooldownMs: 3000, Power: 1.5}},
	hero.Rogue: {"🗡️", hero.Stats{HP: 90, MaxHP: 90, MP: 30, MaxMP: 30, Attack: 18, Defense: 2, Speed: 9, Magic: 2},
		hero.Skill{Name: "Backstab", Kind: hero.SkillDamage, UnlockLevel: 2, CooldownMs: 3500, Power: 2.5}},
	hero.Ranger: {"🏹", hero.Stats{HP: 95, MaxHP: 95, MP: 40, MaxMP: 40, Attack: 16, Defense: 3, Speed: 8, Magic: 4},
		hero.Skill{Name: "Volley", Kind: hero.SkillDamage, UnlockLevel: 2, CooldownMs: 6000, Power: 3}},
	hero.Paladin: {"🛡️", hero.Stats{HP: 140, MaxHP: 140, MP: 50, MaxMP: 50, Attack: 11, Defense: 7, Speed: 4, Magic: 8},
		hero.Skill{Name: "Consecrate", Kind: hero.SkillBuff, UnlockLevel: 3, CooldownMs: 8000, Power: 0.5}},
}

func baseHero(c hero.Class) hero.Hero {
	b, ok := classBases[c]
	if !ok {
		c = hero.Warrior
		b = classBases[c]
	}
	sk := b.skill
	sk.RemainingMs = sk.CooldownMs
	return hero.Hero{
		Class:   c,
		Emoji:   b.emoji,
		Level:   1,
		MaxXP:   100,
		Stats:   b.stats,
		Skill:   &sk,
		Gambits: []hero.Gambit{{Condition: hero.WhenAlways, Action: hero.ActAttack}},
	}
}

// Templates is the starting roster. Saves are backfilled from it by index.
func Templates() []hero.Hero {
	type seed struct {
		id, name   string
		class      hero.Class
		element    hero.Element
		assignment hero.Assignment
		unlocked   bool
		gambits    []hero.Gambit
	}
	seeds := []seed{
		{"h_aldric", "Aldric", hero.Warrior, hero.Fire, hero.AssignCombat, true, []hero.Gambit{
			{Condition: hero.WhenHPBelowPct, Threshold: 15, Action: hero.ActDefend},
			{Condition: hero.WhenAlways, Action: hero.ActAttack},
		}},
		{"h_lyra", "Lyra", hero.Mage, hero.Ice, hero.AssignCombat, true, []hero.Gambit{
			{Condition: hero.WhenBossHPBelowPct, Threshold: 20, Action: hero.ActUseSkill},
			{Condition: hero.WhenAlways, Action: hero.ActAttack},
		}},
		{"h_seren", "Seren", hero.Healer, hero.Light, hero.AssignCombat, true, []hero.Gambit{
			{Condition: hero.WhenHPBelowPct, Threshold: 10, Action: hero.ActRetreat},
			{Condition: hero.WhenAlways, Action: hero.ActAttack},
		}},
		{"h_kael", "Kael", hero.Rogue, hero.Shadow, hero.AssignNone, false, nil},
		{"h_fenna", "Fenna", hero.Ranger, hero.Nature, hero.AssignNone, false, nil},
		{"h_bram", "Bram", hero.Paladin, hero.Light, hero.AssignNone, false, nil},
	}

	out := make([]hero.Hero, 0, len(seeds))
	for _, s := range seeds {
		h := baseHero(s.class)
		h.ID = s.id
		h.Name = s.name
		h.Element = s.element
		h.Assignment = s.assignment
		h.Unlocked = s.unlocked
		if s.gambits != nil {
			h.Gambits = s.gambits
		}
		out = append(out, h)
	}
	return out
}

// UnlockCost is the gold price of recruiting a locked starting hero.
func UnlockCost(index int) int64 {
	return int64(250 * (index + 1))
}
