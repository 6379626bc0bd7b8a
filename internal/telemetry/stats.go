package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period          string            `json:"period"`
	EventCounts     map[EventType]int `json:"event_counts"`
	Ticks           int               `json:"ticks"`
	BossKills       int               `json:"boss_kills"`
	KillsPerMinute  float64           `json:"kills_per_minute"`
	HighestBoss     int               `json:"highest_boss"`
	LevelUps        int               `json:"level_ups"`
	Deaths          int               `json:"deaths"`
	DeathsPerKill   float64           `json:"deaths_per_kill"`
	Summons         int               `json:"summons"`
	GoldFromKills   int64             `json:"gold_from_kills"`
	LootByType      map[string]int64  `json:"loot_by_type"`
	QuestsCompleted int               `json:"quests_completed"`
}

// CalculateStats computes balance stats from events
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:      since.Format("2006-01-02"),
		EventCounts: make(map[EventType]int),
		LootByType:  make(map[string]int64),
	}

	var first, last time.Time
	for _, event := range events {
		stats.EventCounts[event.Type]++
		if first.IsZero() || event.Timestamp.Before(first) {
			first = event.Timestamp
		}
		if event.Timestamp.After(last) {
			last = event.Timestamp
		}

		// Parse metadata for specific stats
		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventTick:
			stats.Ticks++
		case EventBossDefeated:
			stats.BossKills++
			if lvl, ok := metadata["level"].(float64); ok && int(lvl) > stats.HighestBoss {
				stats.HighestBoss = int(lvl)
			}
			if gold, ok := metadata["gold"].(float64); ok {
				stats.GoldFromKills += int64(gold)
			}
		case EventHeroLevelUp:
			if n, ok := metadata["levels"].(float64); ok {
				stats.LevelUps += int(n)
			} else {
				stats.LevelUps++
			}
		case EventHeroDied:
			stats.Deaths++
		case EventHeroSummoned:
			stats.Summons++
		case EventQuestCompleted:
			stats.QuestsCompleted++
		case EventLootCollected:
			if lootType, ok := metadata["loot_type"].(string); ok {
				amt, _ := metadata["amount"].(float64)
				stats.LootByType[lootType] += int64(amt)
			}
		}
	}

	if stats.BossKills > 0 {
		stats.DeathsPerKill = float64(stats.Deaths) / float64(stats.BossKills)
	}
	if span := last.Sub(first); span >= time.Minute {
		stats.KillsPerMinute = float64(stats.BossKills) / span.Minutes()
	}

	return stats, nil
}
