package hero

import "math"

const (
	MaxXPGrowth        = 1.5
	StatPointsPerLevel = 5
)

// Growth is the stat increase a class gets per level.
type Growth struct {
	MaxHP   float64
	MaxMP   float64
	Attack  float64
	Defense float64
	Magic   float64
}

var classGrowth = map[Class]Growth{
	Warrior: {MaxHP: 20, Attack: 2, Defense: 2},
	Mage:    {MaxMP: 15, Magic: 4},
	Healer:  {MaxHP: 10, MaxMP: 10, Magic: 3},
}

var defaultGrowth = Growth{MaxHP: 15, Attack: 2, Magic: 1}

func GrowthFor(c Class) Growth {
	if g, ok := classGrowth[c]; ok {
		return g
	}
	return defaultGrowth
}

// GainXP adds xp and performs as many level-ups as it covers. Returns the
// number of levels gained.
func (h *Hero) GainXP(xp int) int {
	if xp <= 0 {
		return 0
	}
	h.XP += xp
	levels := 0
	for h.MaxXP > 0 && h.XP >= h.MaxXP {
		h.Level++
		h.XP -= h.MaxXP
		h.MaxXP = int(math.Floor(float64(h.MaxXP) * MaxXPGrowth))
		h.StatPoints += StatPointsPerLevel
		h.applyGrowth(GrowthFor(h.Class))
		levels++
	}
	return levels
}

func (h *Hero) applyGrowth(g Growth) {
	h.Stats.MaxHP += g.MaxHP
	h.Stats.MaxMP += g.MaxMP
	h.Stats.MP += g.MaxMP
	h.Stats.Attack += g.Attack
	h.Stats.Defense += g.Defense
	h.Stats.Magic += g.Magic
}

// SpendStatPoint moves one unspent point into stat.
func (h *Hero) SpendStatPoint(stat string) bool {
	if h.StatPoints <= 0 {
		return false
	}
	switch stat {
	case "attack":
		h.Stats.Attack++
	case "defense":
		h.Stats.Defense++
	case "magic":
		h.Stats.Magic++
	case "speed":
		h.Stats.Speed++
	case "maxHp":
		h.Stats.MaxHP += 5
		h.Stats.HP += 5
	default:
		return false
	}
	h.StatPoints--
	return true
}
