package combat

import (
	"math"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/boss"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"
)

type CritConfig struct {
	Chance float64
	Mult   float64
}

// TurnInput is everything one combat tick depends on.
type TurnInput struct {
	Heroes        []hero.Hero
	Boss          boss.Boss
	Multiplier    float64
	Variance      float64
	UltimateReady bool
	UltimateMult  float64
	Pets          []Pet
	TickMs        float64
	SpeedFactor   float64
	Synergies     []Synergy
	Crit          CritConfig
	RNG           RNG
}

type TurnResult struct {
	TotalDamage float64     `json:"totalDamage"`
	Heroes      []hero.Hero `json:"heroes"`
	Crits       int         `json:"crits"`
	SkillsFired []string    `json:"skillsFired,omitempty"`
	Retreated   []string    `json:"retreated,omitempty"`
	Deaths      []string    `json:"deaths,omitempty"`
	Retaliation float64     `json:"retaliation"`
}

// ProcessTurn resolves one combat tick. The input heroes are not modified;
// the result carries updated copies in the same order.
func ProcessTurn(in TurnInput) TurnResult {
	if len(in.Heroes) == 0 {
		return TurnResult{}
	}
	rng := in.RNG
	if rng == nil {
		rng = &FixedRNG{}
	}
	speed := in.SpeedFactor
	if speed <= 0 {
		speed = 1
	}
	elapsed := in.TickMs * speed

	burn, freeze, mitigation := 0.0, 1.0, 0.0
	for _, s := range in.Synergies {
		switch s.Kind {
		case SynergyBurn:
			burn += s.Value
		case SynergyFreeze:
			freeze *= s.Value
		case SynergyMitigation:
			mitigation += s.Value
		}
	}
	mitigation = math.Min(mitigation, 0.9)

	res := TurnResult{Heroes: hero.CloneAll(in.Heroes)}
	defending := make([]bool, len(res.Heroes))
	heal := 0.0

	for i := range res.Heroes {
		h := &res.Heroes[i]
		force := false
		switch h.Decide(in.Boss.Stats.HP, in.Boss.Stats.MaxHP) {
		case hero.ActRetreat:
			h.Assignment = hero.AssignCampfire
			res.Retreated = append(res.Retreated, h.ID)
			continue
		case hero.ActDefend:
			defending[i] = true
		case hero.ActUseSkill:
			force = true
		}

		st := h.EffectiveStats()
		dmg := 0.0
		if !defending[i] {
			dmg = st.Attack * in.Multiplier * (1 + in.Variance*(2*rng.Float64()-1))
			if rng.Float64() < in.Crit.Chance {
				dmg *= math.Max(1, in.Crit.Mult)
				res.Crits++
			}
			if h.Element == hero.Fire && burn > 0 {
				dmg += st.Attack * burn
			}
		}

		if h.Skill.Advance(h.Level, elapsed, force) {
			res.SkillsFired = append(res.SkillsFired, h.ID+":"+h.Skill.Name)
			switch h.Skill.Kind {
			case hero.SkillDamage:
				dmg += st.Attack * h.Skill.Power * in.Multiplier
			case hero.SkillHeal:
				heal += st.Magic * h.Skill.Power
			case hero.SkillBuff:
				dmg *= 1 + h.Skill.Power
			}
		}
		res.TotalDamage += math.Max(0, dmg)
	}

	for _, p := range in.Pets {
		if p.Active {
			res.TotalDamage += p.Attack * in.Multiplier
		}
	}
	res.TotalDamage *= freeze
	if in.UltimateReady {
		res.TotalDamage *= math.Max(1, in.UltimateMult)
	}

	if heal > 0 {
		for i := range res.Heroes {
			h := &res.Heroes[i]
			if !h.IsDead {
				h.Stats.HP = math.Min(h.Stats.MaxHP, h.Stats.HP+heal)
			}
		}
	}

	// A boss that falls this tick does not strike back.
	if res.TotalDamage < in.Boss.Stats.HP {
		retaliate(&res, in.Boss, mitigation, defending, rng)
	}
	return res
}

func retaliate(res *TurnResult, b boss.Boss, mitigation float64, defending []bool, rng RNG) {
	targets := make([]int, 0, len(res.Heroes))
	for i, h := range res.Heroes {
		if !h.IsDead && h.Assignment == hero.AssignCombat {
			targets = append(targets, i)
		}
	}
	if len(targets) == 0 || b.Stats.Attack <= 0 {
		return
	}
	idx := targets[rng.Intn(len(targets))]
	h := &res.Heroes[idx]

	dmg := math.Max(1, b.Stats.Attack-h.EffectiveStats().Defense) * (1 - mitigation)
	if defending[idx] {
		dmg /= 2
	}
	res.Retaliation = dmg
	h.Stats.HP -= dmg
	if h.Stats.HP <= 0 {
		h.Stats.HP = 0
		h.IsDead = true
		res.Deaths = append(res.Deaths, h.ID)
	}
}
