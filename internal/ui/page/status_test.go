package page

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromState(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := game.NewState()
	s.Wallet.Gold = 1234567
	s.Boss.Stats.HP = 50
	s.CombatLog = []game.LogEntry{{Message: "first"}, {Message: "second"}}
	s.LastSaveTime = now.Add(-2 * time.Minute)

	v := FromState(s, now)
	assert.Equal(t, "1,234,567", v.Gold)
	assert.Equal(t, 25, v.BossPct)
	assert.Equal(t, "50 / 200", v.BossHP)
	assert.Len(t, v.Heroes, 3, "locked heroes are hidden")
	assert.Equal(t, []string{"second", "first"}, v.Log)
	assert.Equal(t, "2 minutes ago", v.LastSave)
	assert.Equal(t, "1x", v.GameSpeed)
}

func TestStatusPage_EscapesText(t *testing.T) {
	v := View{BossLevel: 3, Heroes: []HeroRow{{Name: "<script>", Dead: true}}, Log: []string{"a & b"}}

	var buf bytes.Buffer
	require.NoError(t, StatusPage(v).Render(context.Background(), &buf))
	html := buf.String()
	assert.Contains(t, html, "Boss Lv 3")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, `class="dead"`)
	assert.Contains(t, html, "a &amp; b")
}
