package boss

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext_ScalesGeometrically(t *testing.T) {
	b := New()
	initial := b.Stats.MaxHP

	for n := 1; n <= 30; n++ {
		b.Next(DefaultScaling())
		assert.Equal(t, 1+n, b.Level)
		assert.Equal(t, b.Stats.MaxHP, b.Stats.HP)

		exact := initial * math.Pow(HPGrowth, float64(n))
		// floor once per rung; the accumulated drift stays under 1%
		assert.LessOrEqual(t, b.Stats.MaxHP, math.Floor(exact))
		assert.GreaterOrEqual(t, b.Stats.MaxHP, exact*0.99)
	}
}

func TestNext_FirstDefeat(t *testing.T) {
	b := New()
	b.Hit(500)
	assert.True(t, b.IsDead)

	b.Next(Scaling{})
	assert.Equal(t, 2, b.Level)
	assert.Equal(t, 240.0, b.Stats.MaxHP)
	assert.Equal(t, 240.0, b.Stats.HP)
	assert.Equal(t, 9.0, b.Stats.Attack)
	assert.False(t, b.IsDead)
}

func TestHit(t *testing.T) {
	b := New()
	assert.False(t, b.Hit(0))
	assert.False(t, b.Hit(150))
	assert.Equal(t, 50.0, b.Stats.HP)
	assert.True(t, b.Hit(50))
	assert.Equal(t, 0.0, b.Stats.HP)
}

func TestDropsSoul(t *testing.T) {
	assert.False(t, Boss{Level: 9}.DropsSoul())
	assert.True(t, Boss{Level: 10}.DropsSoul())
	assert.True(t, Boss{Level: 20}.DropsSoul())
}
