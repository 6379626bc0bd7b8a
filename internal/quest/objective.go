package quest

// Metric is a counter the game keeps about a run.
type Metric string

const (
	MetricBossKills   Metric = "boss_kills"
	MetricTotalDamage Metric = "total_damage"
	MetricHeroCount   Metric = "hero_count"
	MetricMaxLevel    Metric = "max_level"
	MetricGoldEarned  Metric = "gold_earned"
	MetricSummons     Metric = "summons"
	MetricCopperMined Metric = "copper_mined"
)

// Metrics is a point-in-time reading of every metric.
type Metrics map[Metric]float64

// Objective represents a single goal within a quest
type Objective struct {
	Metric Metric  `json:"metric"`
	Target float64 `json:"target"`
}

// Progress tracks how much of an objective is complete
type Progress struct {
	Current  float64 `json:"current"`
	Required float64 `json:"required"`
	Complete bool    `json:"complete"`
}

func (o Objective) Evaluate(m Metrics, baseline float64) Progress {
	cur := m[o.Metric] - baseline
	if cur < 0 {
		cur = 0
	}
	return Progress{Current: cur, Required: o.Target, Complete: cur >= o.Target}
}
