package telemetry

import "time"

type EventType string

const (
	EventTick           EventType = "tick"
	EventBossDefeated   EventType = "boss_defeated"
	EventHeroLevelUp    EventType = "hero_level_up"
	EventHeroDied       EventType = "hero_died"
	EventHeroRevived    EventType = "hero_revived"
	EventHeroSummoned   EventType = "hero_summoned"
	EventAchievement    EventType = "achievement_unlocked"
	EventQuestCompleted EventType = "quest_completed"
	EventLootCollected  EventType = "loot_collected"
	EventTowerFloor     EventType = "tower_floor"
	EventOfflineGains   EventType = "offline_gains"
	EventSaveWritten    EventType = "save_written"
	EventAssignmentSet  EventType = "assignment_set"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
