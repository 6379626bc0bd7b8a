package quest

type Achievement struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Metric    Metric  `json:"metric"`
	Threshold float64 `json:"threshold"`
}

// Achievements are all-time milestones. Each unlocked one feeds the damage
// multiplier.
var Achievements = []Achievement{
	{ID: "first_blood", Name: "First Blood", Metric: MetricBossKills, Threshold: 1},
	{ID: "ladder_climber", Name: "Ladder Climber", Metric: MetricBossKills, Threshold: 25},
	{ID: "ladder_master", Name: "Ladder Master", Metric: MetricBossKills, Threshold: 100},
	{ID: "heavy_hitter", Name: "Heavy Hitter", Metric: MetricTotalDamage, Threshold: 100_000},
	{ID: "full_house", Name: "Full House", Metric: MetricHeroCount, Threshold: 8},
	{ID: "veteran", Name: "Veteran", Metric: MetricMaxLevel, Threshold: 10},
	{ID: "hoarder", Name: "Hoarder", Metric: MetricGoldEarned, Threshold: 10_000},
}

// NewlyUnlocked returns the ids of achievements reached by m that are not
// already in have, in table order.
func NewlyUnlocked(m Metrics, have []string) []string {
	owned := make(map[string]bool, len(have))
	for _, id := range have {
		owned[id] = true
	}
	var out []string
	for _, a := range Achievements {
		if !owned[a.ID] && m[a.Metric] >= a.Threshold {
			out = append(out, a.ID)
		}
	}
	return out
}
