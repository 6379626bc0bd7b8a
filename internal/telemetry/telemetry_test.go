package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_FiltersBySinceAndType(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryRepository().WithClock(func() time.Time { return now })

	require.NoError(t, repo.RecordEvent(EventTick, nil))
	now = now.Add(time.Minute)
	require.NoError(t, repo.RecordEvent(EventBossDefeated, EventMetadata{"level": 1}))
	require.NoError(t, repo.RecordEvent(EventTick, nil))

	all, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 1, all[0].ID)

	recent, err := repo.GetEvents(now, []EventType{EventTick})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, 3, recent[0].ID)

	require.NoError(t, repo.Clear())
	all, _ = repo.GetEvents(time.Time{}, nil)
	assert.Empty(t, all)
}

func TestMemoryRepository_DropsOldest(t *testing.T) {
	repo := NewMemoryRepositorySize(2)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.RecordEvent(EventTick, EventMetadata{"i": i}))
	}
	all, _ := repo.GetEvents(time.Time{}, nil)
	require.Len(t, all, 2)
	assert.Equal(t, 4, all[0].ID)
	assert.Equal(t, 5, all[1].ID)
	assert.Equal(t, 2, repo.Len())
}

func TestMemoryRepository_Recent(t *testing.T) {
	repo := NewMemoryRepositorySize(3)
	assert.Empty(t, repo.Recent(5))

	for i := 0; i < 4; i++ {
		require.NoError(t, repo.RecordEvent(EventTick, nil))
	}
	got := repo.Recent(2)
	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	assert.Len(t, repo.Recent(10), 3)
	assert.Empty(t, repo.Recent(-1))
}

func TestCalculateStats(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := start
	repo := NewMemoryRepository().WithClock(func() time.Time { return now })

	require.NoError(t, repo.RecordEvent(EventBossDefeated, EventMetadata{"level": 1, "gold": 50}))
	require.NoError(t, repo.RecordEvent(EventHeroLevelUp, EventMetadata{"hero": "h", "levels": 2}))
	require.NoError(t, repo.RecordEvent(EventHeroDied, EventMetadata{"hero": "h"}))
	now = start.Add(2 * time.Minute)
	require.NoError(t, repo.RecordEvent(EventBossDefeated, EventMetadata{"level": 2, "gold": 100}))
	require.NoError(t, repo.RecordEvent(EventLootCollected, EventMetadata{"loot_type": "keys", "amount": 3}))

	events, err := repo.GetEvents(start, nil)
	require.NoError(t, err)
	stats, err := CalculateStats(events, start)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-01", stats.Period)
	assert.Equal(t, 2, stats.BossKills)
	assert.Equal(t, 2, stats.HighestBoss)
	assert.Equal(t, int64(150), stats.GoldFromKills)
	assert.Equal(t, 2, stats.LevelUps)
	assert.Equal(t, 1, stats.Deaths)
	assert.InDelta(t, 0.5, stats.DeathsPerKill, 1e-9)
	assert.InDelta(t, 1.0, stats.KillsPerMinute, 1e-9)
	assert.Equal(t, int64(3), stats.LootByType["keys"])
}
