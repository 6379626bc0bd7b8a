package quest

import "github.com/AndersonAraujoX/rpg-eternal-sub000/internal/loot"

// DailyQuests returns a fresh copy of the daily board.
func DailyQuests() []Quest {
	return []Quest{
		{
			ID:        "daily_slayer",
			Title:     "Slay 5 bosses",
			Objective: Objective{Metric: MetricBossKills, Target: 5},
			Reward:    loot.Drop{Type: loot.Gold, Amount: 500},
			Status:    StatusActive,
		},
		{
			ID:        "daily_damage",
			Title:     "Deal 10,000 damage",
			Objective: Objective{Metric: MetricTotalDamage, Target: 10_000},
			Reward:    loot.Drop{Type: loot.Starlight, Amount: 1},
			Status:    StatusActive,
		},
		{
			ID:        "daily_miner",
			Title:     "Mine 100 copper",
			Objective: Objective{Metric: MetricCopperMined, Target: 100},
			Reward:    loot.Drop{Type: loot.Keys, Amount: 1},
			Status:    StatusActive,
		},
	}
}
