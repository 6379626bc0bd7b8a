package game

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"sync"
	"time"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/applog"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/combat"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/config"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/loot"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/progression"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/quest"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/tavern"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/telemetry"
)

const ultimateFull = 100

// Engine owns every state transition. Tick and the player actions are
// serialized on one mutex so an action never interleaves with a tick.
type Engine struct {
	State  StateRepository
	Events telemetry.Repository
	Clock  Clock
	RNG    combat.RNG
	Config *config.Config
	Logger *log.Logger

	mu sync.Mutex
}

func NewEngine(cfg *config.Config, state StateRepository, events telemetry.Repository, clock Clock, rng combat.RNG, logger *log.Logger) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	if clock == nil {
		clock = RealClock{}
	}
	if rng == nil {
		rng = combat.NewRNG(time.Now().UnixNano())
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{State: state, Events: events, Clock: clock, RNG: rng, Config: cfg, Logger: logger}
}

type TickResult struct {
	Idle          bool        `json:"idle"`
	TickMs        float64     `json:"tickMs"`
	Damage        float64     `json:"damage"`
	Crits         int         `json:"crits"`
	Ultimate      bool        `json:"ultimate,omitempty"`
	Synergies     []string    `json:"synergies,omitempty"`
	BossDefeated  bool        `json:"bossDefeated,omitempty"`
	DefeatedLevel int         `json:"defeatedLevel,omitempty"`
	BossLevel     int         `json:"bossLevel"`
	BossHP        float64     `json:"bossHp"`
	XPGain        int         `json:"xpGain,omitempty"`
	Gold          int64       `json:"gold,omitempty"`
	LevelUps      []string    `json:"levelUps,omitempty"`
	Deaths        []string    `json:"deaths,omitempty"`
	Revived       []string    `json:"revived,omitempty"`
	Summoned      string      `json:"summoned,omitempty"`
	Copper        float64     `json:"copper,omitempty"`
	Loot          []loot.Drop `json:"loot,omitempty"`
	ItemDropped   string      `json:"itemDropped,omitempty"`
	TowerFloor    int         `json:"towerFloor,omitempty"`
	Achievements  []string    `json:"achievements,omitempty"`
	Quests        []string    `json:"quests,omitempty"`
}

type pendingEvent struct {
	typ  telemetry.EventType
	meta telemetry.EventMetadata
}

// Tick advances the game by one loop step. With no combat heroes and the
// tower inactive it is a no-op and writes nothing.
func (e *Engine) Tick(ctx context.Context) (TickResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := e.State.Get(ctx)
	if err != nil {
		return TickResult{}, err
	}
	if !s.Active() {
		return TickResult{Idle: true}, nil
	}

	cfg := e.Config
	now := e.Clock.Now()
	tickMs := float64(e.interval(s)) / float64(time.Millisecond)
	res := TickResult{TickMs: tickMs}
	var events []pendingEvent
	emit := func(t telemetry.EventType, m telemetry.EventMetadata) {
		events = append(events, pendingEvent{t, m})
	}

	// 1. tavern automation
	cost := pricing(cfg).Cost(s.Summons)
	if tavern.ShouldAutoSummon(s.Automation.AutoSummon, s.Wallet.Gold, cost, len(s.Heroes), cfg.Tavern.AutoSummonChance, e.RNG) {
		h := e.summon(s, cost, now)
		res.Summoned = h.ID
		emit(telemetry.EventHeroSummoned, telemetry.EventMetadata{"hero": h.ID, "class": h.Class, "cost": cost, "auto": true})
	}

	// 2. combat on the active snapshot
	var idx []int
	for i, h := range s.Heroes {
		if h.Fighting() {
			idx = append(idx, i)
		}
	}
	ultimateReady := s.UltimateCharge >= ultimateFull
	if len(idx) > 0 {
		party := make([]hero.Hero, len(idx))
		for k, i := range idx {
			party[k] = s.Heroes[i]
		}
		syn := combat.ActiveSynergies(party)
		for _, sy := range syn {
			res.Synergies = append(res.Synergies, sy.ID)
		}
		turn := combat.ProcessTurn(combat.TurnInput{
			Heroes:        party,
			Boss:          s.Boss,
			Multiplier:    combat.DamageMultiplier(s.Bonuses(), rates(cfg)),
			Variance:      cfg.Combat.BaseVariance,
			UltimateReady: ultimateReady,
			UltimateMult:  cfg.Combat.UltimateMult,
			Pets:          s.Pets,
			TickMs:        tickMs,
			SpeedFactor:   s.GameSpeed,
			Synergies:     syn,
			Crit:          crit(cfg),
			RNG:           e.RNG,
		})
		res.Damage = turn.TotalDamage
		res.Crits = turn.Crits
		res.Ultimate = ultimateReady
		for _, id := range turn.Deaths {
			res.Deaths = append(res.Deaths, id)
			s.Stats.Deaths++
			e.appendLog(s, now, "%s has fallen", nameOf(turn.Heroes, id))
			emit(telemetry.EventHeroDied, telemetry.EventMetadata{"hero": id, "boss_level": s.Boss.Level})
		}

		// 3. progression
		out := progression.Resolve(progression.Input{
			Heroes:      turn.Heroes,
			Boss:        s.Boss,
			TotalDamage: turn.TotalDamage,
			Rewards:     rewards(cfg, s.Guild.Level),
			Scaling:     scaling(cfg),
		})
		s.Boss = out.Boss
		for k, i := range idx {
			s.Heroes[i] = out.Heroes[k]
		}
		if out.Defeated {
			e.applyDefeat(s, out, &res, now, emit)
		}

		if ultimateReady {
			s.UltimateCharge = 0
		} else {
			s.UltimateCharge = math.Min(ultimateFull, s.UltimateCharge+cfg.Combat.UltimateChargePerTick)
		}
	}
	res.BossLevel = s.Boss.Level
	res.BossHP = s.Boss.Stats.HP

	// 4. passive yields
	e.yields(s, tickMs/1000, &res, now, emit)
	if s.Tower.Active && cfg.Tower.FloorMs > 0 {
		s.Tower.ClimbMs += tickMs
		for s.Tower.ClimbMs >= cfg.Tower.FloorMs {
			s.Tower.ClimbMs -= cfg.Tower.FloorMs
			s.Tower.Floor++
			s.Wallet.Add(loot.Drop{Type: loot.Glory, Amount: 1})
			res.TowerFloor = s.Tower.Floor
			e.appendLog(s, now, "Tower floor %d cleared", s.Tower.Floor)
			emit(telemetry.EventTowerFloor, telemetry.EventMetadata{"floor": s.Tower.Floor})
		}
	}

	// 5. fan-out
	progression.ApplyFatigue(s.Heroes)
	s.Stats.Ticks++
	s.Stats.TotalDamage += res.Damage
	s.Stats.Crits += int64(res.Crits)
	s.LastTickAt = now

	m := s.Metrics()
	for _, id := range quest.NewlyUnlocked(m, s.Achievements) {
		s.Achievements = append(s.Achievements, id)
		res.Achievements = append(res.Achievements, id)
		e.appendLog(s, now, "Achievement unlocked: %s", id)
		emit(telemetry.EventAchievement, telemetry.EventMetadata{"achievement": id})
	}
	s.Quests.Refresh(questDay(now), m)
	for _, q := range s.Quests.Progress(m, now) {
		s.Wallet.Add(q.Reward)
		res.Quests = append(res.Quests, q.ID)
		e.appendLog(s, now, "Quest complete: %s", q.Title)
		emit(telemetry.EventQuestCompleted, telemetry.EventMetadata{"quest": q.ID, "reward": string(q.Reward.Type), "amount": q.Reward.Amount})
	}
	emit(telemetry.EventTick, telemetry.EventMetadata{"damage": res.Damage, "boss_level": s.Boss.Level})

	if err := e.State.Update(ctx, s); err != nil {
		return TickResult{}, fmt.Errorf("store tick: %w", err)
	}
	e.record(events)
	return res, nil
}

func (e *Engine) applyDefeat(s *State, out progression.Outcome, res *TickResult, now time.Time, emit func(telemetry.EventType, telemetry.EventMetadata)) {
	s.Wallet.Add(loot.Drop{Type: loot.Gold, Amount: out.Gold}, loot.Drop{Type: loot.Souls, Amount: out.Souls})
	s.Stats.BossKills++
	s.Stats.GoldEarned += out.Gold
	s.Stats.HighestBoss = max(s.Stats.HighestBoss, out.DefeatedLevel)

	res.BossDefeated = true
	res.DefeatedLevel = out.DefeatedLevel
	res.XPGain = out.XPGain
	res.Gold = out.Gold
	e.appendLog(s, now, "Boss Lv %d defeated! +%d gold, +%d xp", out.DefeatedLevel, out.Gold, out.XPGain)
	emit(telemetry.EventBossDefeated, telemetry.EventMetadata{"level": out.DefeatedLevel, "gold": out.Gold, "xp": out.XPGain, "souls": out.Souls})

	for _, h := range s.Heroes {
		if n, ok := out.LevelUps[h.ID]; ok {
			res.LevelUps = append(res.LevelUps, h.ID)
			e.appendLog(s, now, "%s reached level %d", h.Name, h.Level)
			emit(telemetry.EventHeroLevelUp, telemetry.EventMetadata{"hero": h.ID, "level": h.Level, "levels": n})
		}
	}

	if e.RNG.Float64() < e.Config.Rewards.ItemDropChance {
		it := rollItem(e.RNG, out.DefeatedLevel, s.Stats.BossKills)
		s.Items = append(s.Items, it)
		res.ItemDropped = it.ID
		e.appendLog(s, now, "The boss dropped %s", it.Name)
		emit(telemetry.EventLootCollected, telemetry.EventMetadata{"loot_type": "item", "amount": 1, "rarity": it.Rarity})
	}
}

func (e *Engine) yields(s *State, secs float64, res *TickResult, now time.Time, emit func(telemetry.EventType, telemetry.EventMetadata)) {
	a := e.Config.Assignments
	for i := range s.Heroes {
		h := &s.Heroes[i]
		if !h.Unlocked {
			continue
		}
		switch h.Assignment {
		case hero.AssignMine:
			if h.IsDead {
				continue
			}
			y := a.MineYieldPerSecond * secs * (1 + 0.1*float64(h.Level-1))
			s.Wallet.Copper += y
			s.Stats.CopperMined += y
			res.Copper += y
		case hero.AssignCampfire:
			h.Stats.HP = math.Min(h.Stats.MaxHP, h.Stats.HP+h.Stats.MaxHP*a.CampfireHealPct/100)
			if h.IsDead && h.Stats.HP >= h.Stats.MaxHP {
				h.IsDead = false
				res.Revived = append(res.Revived, h.ID)
				e.appendLog(s, now, "%s recovered at the campfire", h.Name)
				emit(telemetry.EventHeroRevived, telemetry.EventMetadata{"hero": h.ID, "source": "campfire"})
			}
		case hero.AssignExpedition:
			if h.IsDead || e.RNG.Float64() >= a.ExpeditionFindChance {
				continue
			}
			d := loot.ExpeditionTable.Roll(e.RNG)
			s.Wallet.Add(d)
			res.Loot = append(res.Loot, d)
			e.appendLog(s, now, "%s found %d %s", h.Name, d.Amount, d.Type)
			emit(telemetry.EventLootCollected, telemetry.EventMetadata{"loot_type": string(d.Type), "amount": d.Amount, "hero": h.ID})
		}
	}
}

// TickInterval is the delay before the next tick at the current speed and
// party composition.
func (e *Engine) TickInterval(ctx context.Context) (time.Duration, error) {
	s, err := e.State.Get(ctx)
	if err != nil {
		return 0, err
	}
	return e.interval(s), nil
}

func (e *Engine) interval(s *State) time.Duration {
	speed := s.GameSpeed
	if speed <= 0 {
		speed = 1
	}
	ms := (1000 / speed) * (1 - combat.AttackSpeedBonus(e.Synergies(s)))
	ms = math.Max(float64(e.Config.Loop.MinTickMs), ms)
	return time.Duration(ms * float64(time.Millisecond))
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot(ctx context.Context) (*State, error) {
	return e.State.Get(ctx)
}

// VersionedSnapshot returns the state together with its repository
// revision. ok is false when the repository keeps no revisions.
func (e *Engine) VersionedSnapshot(ctx context.Context) (s *State, rev uint64, ok bool, err error) {
	if r, isVersioned := e.State.(interface {
		GetRevision(context.Context) (*State, uint64, error)
	}); isVersioned {
		s, rev, err = r.GetRevision(ctx)
		return s, rev, err == nil, err
	}
	s, err = e.State.Get(ctx)
	return s, 0, false, err
}

// Replace swaps in a whole state, as after a load or an import.
func (e *Engine) Replace(ctx context.Context, s *State) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.State.Update(ctx, s)
}

// Checkpoint stamps the save time and returns the state to persist.
func (e *Engine) Checkpoint(ctx context.Context) (*State, error) {
	var out *State
	_, err := e.mutate(ctx, func(s *State) error {
		s.LastSaveTime = e.Clock.Now()
		out = s.Clone()
		return nil
	})
	return out, err
}

func (e *Engine) appendLog(s *State, now time.Time, format string, args ...any) {
	s.CombatLog = append(s.CombatLog, LogEntry{At: now, Message: fmt.Sprintf(format, args...)})
	if n := e.Config.Loop.LogSize; n > 0 && len(s.CombatLog) > n {
		s.CombatLog = append([]LogEntry(nil), s.CombatLog[len(s.CombatLog)-n:]...)
	}
}

func (e *Engine) record(events []pendingEvent) {
	if e.Events == nil {
		return
	}
	for _, ev := range events {
		if err := e.Events.RecordEvent(ev.typ, ev.meta); err != nil {
			applog.Warn(e.Logger, "telemetry record failed", map[string]any{"type": string(ev.typ), "err": err.Error()})
		}
	}
}

func nameOf(hs []hero.Hero, id string) string {
	for _, h := range hs {
		if h.ID == id {
			return h.Name
		}
	}
	return id
}

// Multiplier is the damage multiplier the next tick would use.
func (e *Engine) Multiplier(s *State) float64 {
	return combat.DamageMultiplier(s.Bonuses(), rates(e.Config))
}

// Synergies lists the bonuses the current combat party activates.
func (e *Engine) Synergies(s *State) []combat.Synergy {
	var party []hero.Hero
	for _, h := range s.Heroes {
		if h.Fighting() {
			party = append(party, h)
		}
	}
	return combat.ActiveSynergies(party)
}
