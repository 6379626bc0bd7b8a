package boss

import (
	"math"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"
)

const (
	StartHP      = 200
	StartAttack  = 8
	HPGrowth     = 1.2
	AttackGrowth = 1.1
	SoulEveryNth = 10
)

type Boss struct {
	Level  int        `json:"level"`
	Stats  hero.Stats `json:"stats"`
	IsDead bool       `json:"isDead"`
}

func New() Boss {
	return Boss{
		Level: 1,
		Stats: hero.Stats{HP: StartHP, MaxHP: StartHP, Attack: StartAttack, Defense: 0},
	}
}

// Scaling controls how the next boss grows after a defeat.
type Scaling struct {
	HPGrowth     float64
	AttackGrowth float64
}

func DefaultScaling() Scaling {
	return Scaling{HPGrowth: HPGrowth, AttackGrowth: AttackGrowth}
}

// Next replaces a defeated boss in place with the next rung of the ladder.
func (b *Boss) Next(sc Scaling) {
	if sc.HPGrowth <= 0 {
		sc.HPGrowth = HPGrowth
	}
	if sc.AttackGrowth <= 0 {
		sc.AttackGrowth = AttackGrowth
	}
	b.Level++
	b.Stats.MaxHP = math.Floor(b.Stats.MaxHP * sc.HPGrowth)
	b.Stats.HP = b.Stats.MaxHP
	atk := math.Floor(b.Stats.Attack * sc.AttackGrowth)
	if atk <= b.Stats.Attack {
		atk = b.Stats.Attack + 1
	}
	b.Stats.Attack = atk
	b.IsDead = false
}

// Hit applies damage and reports whether it was lethal. A lethal hit leaves
// the boss flagged dead at zero HP until Next is called.
func (b *Boss) Hit(dmg float64) bool {
	if dmg <= 0 {
		return false
	}
	if dmg >= b.Stats.HP {
		b.Stats.HP = 0
		b.IsDead = true
		return true
	}
	b.Stats.HP -= dmg
	return false
}

// DropsSoul reports whether defeating a boss of this level yields a soul.
func (b Boss) DropsSoul() bool {
	return b.Level > 0 && b.Level%SoulEveryNth == 0
}
