package game

import (
	"context"
	"testing"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/quest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Len(t, s.Heroes, 6)
	assert.Equal(t, 1, s.Boss.Level)
	assert.Equal(t, 200.0, s.Boss.Stats.HP)
	assert.Equal(t, 1.0, s.GameSpeed)
	assert.True(t, s.Active())
	assert.Equal(t, 2, s.Hero("h_seren"))
	assert.Equal(t, -1, s.Hero("missing"))
}

func TestStateActive(t *testing.T) {
	s := NewState()
	for i := range s.Heroes {
		s.Heroes[i].Assignment = hero.AssignMine
	}
	assert.False(t, s.Active())
	s.Tower.Active = true
	assert.True(t, s.Active())
}

func TestStateMetrics(t *testing.T) {
	s := NewState()
	s.Heroes[1].Level = 7
	s.Stats.BossKills = 4
	s.Summons = 2

	m := s.Metrics()
	assert.Equal(t, 4.0, m[quest.MetricBossKills])
	assert.Equal(t, 3.0, m[quest.MetricHeroCount])
	assert.Equal(t, 7.0, m[quest.MetricMaxLevel])
	assert.Equal(t, 2.0, m[quest.MetricSummons])
}

func TestStateClone_SharesNothing(t *testing.T) {
	s := NewState()
	s.Talents["sharpened_blades"] = 1
	s.Items = []hero.Item{{ID: "i", Runes: []hero.Rune{{Stat: "attack", Value: 1}}}}

	c := s.Clone()
	c.Heroes[0].Stats.HP = 1
	c.Heroes[0].Skill.RemainingMs = 1
	c.Talents["sharpened_blades"] = 9
	c.Items[0].Runes[0].Value = 9

	assert.Equal(t, 150.0, s.Heroes[0].Stats.HP)
	assert.NotEqual(t, 1.0, s.Heroes[0].Skill.RemainingMs)
	assert.Equal(t, 1, s.Talents["sharpened_blades"])
	assert.Equal(t, 1.0, s.Items[0].Runes[0].Value)
}

func TestMemoryStateRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryStateRepo(nil)

	t.Run("Get returns a copy", func(t *testing.T) {
		s, err := repo.Get(ctx)
		require.NoError(t, err)
		s.Boss.Level = 99
		again, _ := repo.Get(ctx)
		assert.Equal(t, 1, again.Boss.Level)
	})

	t.Run("Update stores", func(t *testing.T) {
		s, rev, err := repo.GetRevision(ctx)
		require.NoError(t, err)
		s.Wallet.Gold = 42
		require.NoError(t, repo.Update(ctx, s))
		got, next, err := repo.GetRevision(ctx)
		require.NoError(t, err)
		assert.Equal(t, rev+1, next)
		assert.Equal(t, int64(42), got.Wallet.Gold)
		s.Wallet.Gold = 0
		again, _ := repo.Get(ctx)
		assert.Equal(t, int64(42), again.Wallet.Gold)
	})

	t.Run("Update rejects nil", func(t *testing.T) {
		_, rev, _ := repo.GetRevision(ctx)
		assert.ErrorIs(t, repo.Update(ctx, nil), ErrNilState)
		_, after, _ := repo.GetRevision(ctx)
		assert.Equal(t, rev, after)
	})
}
