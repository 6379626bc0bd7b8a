package hero

import "math"

const (
	MaxFatigue        = 100.0
	CombatFatigueGain = 0.1
	RestFatigueLoss   = 1.0
)

// TickFatigue moves fatigue one tick: fighting wears heroes down, anything
// else lets them recover. Always stays inside [0, MaxFatigue].
func (h *Hero) TickFatigue() {
	if h.Assignment == AssignCombat {
		h.Fatigue = math.Min(MaxFatigue, h.Fatigue+CombatFatigueGain)
	} else {
		h.Fatigue = math.Max(0, h.Fatigue-RestFatigueLoss)
	}
}
