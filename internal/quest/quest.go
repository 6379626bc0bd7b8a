package quest

import (
	"time"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/loot"
)

// QuestStatus tracks the state of a quest
type QuestStatus string

const (
	StatusActive   QuestStatus = "active"
	StatusComplete QuestStatus = "complete"
)

// Quest is a daily objective measured against the metrics captured when the
// day started.
type Quest struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Objective   Objective   `json:"objective"`
	Reward      loot.Drop   `json:"reward"`
	Status      QuestStatus `json:"status"`
	Baseline    float64     `json:"baseline"`
	Progress    Progress    `json:"progress"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
}

// Update recomputes progress and reports whether the quest just completed.
// A completed quest never pays twice.
func (q *Quest) Update(m Metrics, now time.Time) bool {
	if q.Status == StatusComplete {
		return false
	}
	q.Progress = q.Objective.Evaluate(m, q.Baseline)
	if !q.Progress.Complete {
		return false
	}
	q.Status = StatusComplete
	q.CompletedAt = &now
	return true
}

// Board holds the current day's quests.
type Board struct {
	Day    string  `json:"day"`
	Quests []Quest `json:"quests"`
}

// Refresh rolls the board over to day when it changed, re-baselining every
// quest from m. Returns true on rollover.
func (b *Board) Refresh(day string, m Metrics) bool {
	if b.Day == day && len(b.Quests) > 0 {
		return false
	}
	b.Day = day
	b.Quests = DailyQuests()
	for i := range b.Quests {
		b.Quests[i].Baseline = m[b.Quests[i].Objective.Metric]
	}
	return true
}

// Progress advances every quest in place and returns the ones that
// completed on this call.
func (b *Board) Progress(m Metrics, now time.Time) []Quest {
	var done []Quest
	for i := range b.Quests {
		if b.Quests[i].Update(m, now) {
			done = append(done, b.Quests[i])
		}
	}
	return done
}

func (b Board) Clone() Board {
	out := Board{Day: b.Day}
	if b.Quests != nil {
		out.Quests = make([]Quest, len(b.Quests))
		for i, q := range b.Quests {
			if q.CompletedAt != nil {
				t := *q.CompletedAt
				q.CompletedAt = &t
			}
			out.Quests[i] = q
		}
	}
	return out
}
