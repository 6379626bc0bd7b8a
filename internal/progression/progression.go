package progression

import (
	"math"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/boss"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"
)

// Rewards are the per-boss-level payouts of a kill.
type Rewards struct {
	XPPerBossLevel   float64
	GoldPerBossLevel float64
	GuildXPMult      float64
	GuildGoldMult    float64
}

func DefaultRewards() Rewards {
	return Rewards{XPPerBossLevel: 10, GoldPerBossLevel: 50, GuildXPMult: 1, GuildGoldMult: 1}
}

// GuildMultipliers scales the configured base multipliers by guild level:
// +5% per level on both XP and gold.
func GuildMultipliers(level int, baseXP, baseGold float64) (xp, gold float64) {
	if baseXP <= 0 {
		baseXP = 1
	}
	if baseGold <= 0 {
		baseGold = 1
	}
	bonus := 1 + 0.05*float64(max(0, level))
	return baseXP * bonus, baseGold * bonus
}

type Input struct {
	Heroes      []hero.Hero
	Boss        boss.Boss
	TotalDamage float64
	Rewards     Rewards
	Scaling     boss.Scaling
}

type Outcome struct {
	Defeated      bool           `json:"defeated"`
	DefeatedLevel int            `json:"defeatedLevel,omitempty"`
	Boss          boss.Boss      `json:"boss"`
	Heroes        []hero.Hero    `json:"heroes"`
	XPGain        int            `json:"xpGain,omitempty"`
	Gold          int64          `json:"gold,omitempty"`
	Souls         int64          `json:"souls,omitempty"`
	LevelUps      map[string]int `json:"levelUps,omitempty"`
}

// Resolve applies a tick's damage to the boss. On a kill the boss is
// replaced by the next rung, every living hero of the combat snapshot gains
// XP (possibly several levels), and gold is paid once.
func Resolve(in Input) Outcome {
	b := in.Boss
	out := Outcome{Heroes: hero.CloneAll(in.Heroes)}
	if !b.Hit(in.TotalDamage) {
		out.Boss = b
		return out
	}

	r := in.Rewards
	if r.GuildXPMult <= 0 {
		r.GuildXPMult = 1
	}
	if r.GuildGoldMult <= 0 {
		r.GuildGoldMult = 1
	}

	level := float64(b.Level)
	out.Defeated = true
	out.DefeatedLevel = b.Level
	out.XPGain = int(math.Floor(level * r.XPPerBossLevel * r.GuildXPMult))
	out.Gold = int64(math.Floor(level * r.GoldPerBossLevel * r.GuildGoldMult))
	if b.DropsSoul() {
		out.Souls = 1
	}
	b.Next(in.Scaling)
	out.Boss = b

	for i := range out.Heroes {
		h := &out.Heroes[i]
		if h.IsDead {
			continue
		}
		if n := h.GainXP(out.XPGain); n > 0 {
			if out.LevelUps == nil {
				out.LevelUps = map[string]int{}
			}
			out.LevelUps[h.ID] = n
		}
	}
	return out
}

// ApplyFatigue advances fatigue on every hero by its assignment.
func ApplyFatigue(heroes []hero.Hero) {
	for i := range heroes {
		heroes[i].TickFatigue()
	}
}
