package hero

type Condition string

const (
	WhenAlways         Condition = "always"
	WhenHPBelowPct     Condition = "hp_below_pct"
	WhenBossHPBelowPct Condition = "boss_hp_below_pct"
)

type Action string

const (
	ActAttack   Action = "attack"
	ActUseSkill Action = "use_skill"
	ActDefend   Action = "defend"
	ActRetreat  Action = "retreat"
)

// Gambit is one condition -> action rule. A hero's gambits are checked in
// order and the first match decides the action for the tick.
type Gambit struct {
	Condition Condition `json:"condition"`
	Threshold float64   `json:"threshold,omitempty"`
	Action    Action    `json:"action"`
}

func (g Gambit) Matches(self Stats, bossHP, bossMaxHP float64) bool {
	switch g.Condition {
	case WhenAlways:
		return true
	case WhenHPBelowPct:
		return self.MaxHP > 0 && self.HP/self.MaxHP*100 < g.Threshold
	case WhenBossHPBelowPct:
		return bossMaxHP > 0 && bossHP/bossMaxHP*100 < g.Threshold
	}
	return false
}

// Decide returns the action of the first matching gambit, attack otherwise.
func (h Hero) Decide(bossHP, bossMaxHP float64) Action {
	for _, g := range h.Gambits {
		if g.Matches(h.Stats, bossHP, bossMaxHP) {
			return g.Action
		}
	}
	return ActAttack
}
