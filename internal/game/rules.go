package game

import (
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/boss"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/combat"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/config"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/progression"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/tavern"
)

func rates(c *config.Config) combat.Rates {
	m := c.Multiplier
	return combat.Rates{
		SoulPct:        m.SoulPct,
		DivinityPct:    m.DivinityPct,
		CardPct:        m.CardPct,
		AchievementPct: m.AchievementPct,
		BossDefensePct: m.BossDefensePct,
		MinMultiplier:  m.MinMultiplier,
	}
}

func scaling(c *config.Config) boss.Scaling {
	return boss.Scaling{HPGrowth: c.Boss.HPGrowth, AttackGrowth: c.Boss.AttackGrowth}
}

func pricing(c *config.Config) tavern.Pricing {
	return tavern.Pricing{BaseCost: c.Tavern.BaseCost, CostGrowth: c.Tavern.CostGrowth}
}

// rewards folds the guild level into the configured base multipliers.
func rewards(c *config.Config, guildLevel int) progression.Rewards {
	xp, gold := progression.GuildMultipliers(guildLevel, c.Rewards.GuildXPMult, c.Rewards.GuildGoldMult)
	return progression.Rewards{
		XPPerBossLevel:   c.Rewards.XPPerBossLevel,
		GoldPerBossLevel: c.Rewards.GoldPerBossLevel,
		GuildXPMult:      xp,
		GuildGoldMult:    gold,
	}
}

func crit(c *config.Config) combat.CritConfig {
	return combat.CritConfig{Chance: c.Combat.CritChance, Mult: c.Combat.CritMult}
}
