package game

import (
	"context"
	"time"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/boss"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/combat"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/loot"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/quest"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/tavern"
)

type Tower struct {
	Active  bool    `json:"active"`
	Floor   int     `json:"floor"`
	ClimbMs float64 `json:"climbMs"`
}

type Guild struct {
	Level int `json:"level"`
}

type Automation struct {
	AutoSummon bool `json:"autoSummon"`
}

// RunStats are lifetime counters. Quests and achievements read them.
type RunStats struct {
	Ticks       int64   `json:"ticks"`
	BossKills   int64   `json:"bossKills"`
	TotalDamage float64 `json:"totalDamage"`
	GoldEarned  int64   `json:"goldEarned"`
	Crits       int64   `json:"crits"`
	Deaths      int64   `json:"deaths"`
	CopperMined float64 `json:"copperMined"`
	HighestBoss int     `json:"highestBoss"`
}

type LogEntry struct {
	At      time.Time `json:"at"`
	Message string    `json:"message"`
}

// State is the whole game: every slice a save file carries.
type State struct {
	Heroes         []hero.Hero    `json:"heroes"`
	Boss           boss.Boss      `json:"boss"`
	Items          []hero.Item    `json:"items"`
	Wallet         loot.Wallet    `json:"wallet"`
	Pets           []combat.Pet   `json:"pets"`
	Talents        map[string]int `json:"talents"`
	Constellations map[string]int `json:"constellations"`
	Artifacts      []string       `json:"artifacts"`
	Cards          map[string]int `json:"cards"`
	Achievements   []string       `json:"achievements"`
	Tower          Tower          `json:"tower"`
	Guild          Guild          `json:"guild"`
	Automation     Automation     `json:"automation"`
	GameSpeed      float64        `json:"gameSpeed"`
	UltimateCharge float64        `json:"ultimateCharge"`
	Summons        int            `json:"summons"`
	Stats          RunStats       `json:"stats"`
	Quests         quest.Board    `json:"quests"`
	CombatLog      []LogEntry     `json:"combatLog"`
	LastTickAt     time.Time      `json:"lastTickAt"`
	LastSaveTime   time.Time      `json:"lastSaveTime"`
}

// NewState is a fresh run: the template roster against the first boss.
func NewState() *State {
	return &State{
		Heroes:         tavern.Templates(),
		Boss:           boss.New(),
		Items:          []hero.Item{},
		Pets:           []combat.Pet{},
		Talents:        map[string]int{},
		Constellations: map[string]int{},
		Artifacts:      []string{},
		Cards:          map[string]int{},
		Achievements:   []string{},
		GameSpeed:      1,
		CombatLog:      []LogEntry{},
	}
}

// Active reports whether a tick has anything to do.
func (s *State) Active() bool {
	if s.Tower.Active {
		return true
	}
	for _, h := range s.Heroes {
		if h.Fighting() {
			return true
		}
	}
	return false
}

// Hero returns the index of the hero with id, or -1.
func (s *State) Hero(id string) int {
	for i := range s.Heroes {
		if s.Heroes[i].ID == id {
			return i
		}
	}
	return -1
}

// Metrics reads the counters quests and achievements are measured against.
func (s *State) Metrics() quest.Metrics {
	maxLevel, unlocked := 0, 0
	for _, h := range s.Heroes {
		if !h.Unlocked {
			continue
		}
		unlocked++
		maxLevel = max(maxLevel, h.Level)
	}
	return quest.Metrics{
		quest.MetricBossKills:   float64(s.Stats.BossKills),
		quest.MetricTotalDamage: s.Stats.TotalDamage,
		quest.MetricHeroCount:   float64(unlocked),
		quest.MetricMaxLevel:    float64(maxLevel),
		quest.MetricGoldEarned:  float64(s.Stats.GoldEarned),
		quest.MetricSummons:     float64(s.Summons),
		quest.MetricCopperMined: s.Stats.CopperMined,
	}
}

// Bonuses gathers the multiplier inputs from the state.
func (s *State) Bonuses() combat.Bonuses {
	return combat.Bonuses{
		Souls:          s.Wallet.Souls,
		Divinity:       s.Wallet.Divinity,
		Talents:        s.Talents,
		Constellations: s.Constellations,
		Artifacts:      s.Artifacts,
		Boss:           s.Boss,
		Cards:          s.Cards,
		Achievements:   s.Achievements,
		Pets:           s.Pets,
	}
}

func (s *State) Clone() *State {
	c := *s
	c.Heroes = hero.CloneAll(s.Heroes)
	c.Items = append([]hero.Item(nil), s.Items...)
	for i := range c.Items {
		c.Items[i].Runes = append([]hero.Rune(nil), s.Items[i].Runes...)
	}
	c.Pets = append([]combat.Pet(nil), s.Pets...)
	c.Talents = cloneMap(s.Talents)
	c.Constellations = cloneMap(s.Constellations)
	c.Cards = cloneMap(s.Cards)
	c.Artifacts = append([]string(nil), s.Artifacts...)
	c.Achievements = append([]string(nil), s.Achievements...)
	c.Quests = s.Quests.Clone()
	c.CombatLog = append([]LogEntry(nil), s.CombatLog...)
	return &c
}

func cloneMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// StateRepository handles persistence of the live game state
type StateRepository interface {
	Get(ctx context.Context) (*State, error)
	Update(ctx context.Context, state *State) error
}
