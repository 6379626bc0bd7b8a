package quest

import (
	"testing"
	"time"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/loot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_RefreshBaselinesAndRollsOver(t *testing.T) {
	var b Board
	m := Metrics{MetricBossKills: 40, MetricTotalDamage: 1000}

	require.True(t, b.Refresh("2026-01-01", m))
	require.Len(t, b.Quests, 3)
	assert.Equal(t, 40.0, b.Quests[0].Baseline)
	assert.Equal(t, 1000.0, b.Quests[1].Baseline)

	assert.False(t, b.Refresh("2026-01-01", Metrics{MetricBossKills: 99}))
	assert.Equal(t, 40.0, b.Quests[0].Baseline)

	assert.True(t, b.Refresh("2026-01-02", Metrics{MetricBossKills: 99}))
	assert.Equal(t, 99.0, b.Quests[0].Baseline)
}

func TestBoard_ProgressPaysOnce(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var b Board
	b.Refresh("2026-01-01", Metrics{MetricBossKills: 10})

	assert.Empty(t, b.Progress(Metrics{MetricBossKills: 14}, now))
	assert.Equal(t, 4.0, b.Quests[0].Progress.Current)

	done := b.Progress(Metrics{MetricBossKills: 15}, now)
	require.Len(t, done, 1)
	assert.Equal(t, "daily_slayer", done[0].ID)
	assert.Equal(t, loot.Drop{Type: loot.Gold, Amount: 500}, done[0].Reward)
	assert.Equal(t, StatusComplete, b.Quests[0].Status)
	require.NotNil(t, b.Quests[0].CompletedAt)

	assert.Empty(t, b.Progress(Metrics{MetricBossKills: 30}, now))
}

func TestObjectiveEvaluate_NeverNegative(t *testing.T) {
	p := Objective{Metric: MetricGoldEarned, Target: 10}.Evaluate(Metrics{}, 50)
	assert.Equal(t, 0.0, p.Current)
	assert.False(t, p.Complete)
}

func TestNewlyUnlocked(t *testing.T) {
	m := Metrics{MetricBossKills: 30, MetricMaxLevel: 12}
	assert.Equal(t, []string{"first_blood", "ladder_climber", "veteran"}, NewlyUnlocked(m, nil))
	assert.Equal(t, []string{"ladder_climber"}, NewlyUnlocked(m, []string{"first_blood", "veteran"}))
	assert.Empty(t, NewlyUnlocked(Metrics{}, nil))
}

func TestBoardClone(t *testing.T) {
	var b Board
	b.Refresh("d", Metrics{})
	c := b.Clone()
	c.Quests[0].Status = StatusComplete
	assert.Equal(t, StatusActive, b.Quests[0].Status)
}
