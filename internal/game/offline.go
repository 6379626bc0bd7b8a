package game

import (
	"context"
	"math"
	"time"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/config"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/loot"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/telemetry"
)

// OfflineReport is the coarse estimate of what the party earned while the
// game was not running. It is a heuristic, not a replay of the tick loop.
type OfflineReport struct {
	Seconds  float64 `json:"seconds"`
	Miners   int     `json:"miners"`
	Fighters int     `json:"fighters"`
	Copper   float64 `json:"copper"`
	Kills    int64   `json:"kills"`
	Gold     int64   `json:"gold"`
}

// OfflineGains estimates the earnings between s.LastSaveTime and now.
// A state that was never saved, or a clock that went backwards, earns
// nothing.
func OfflineGains(s *State, now time.Time, cfg *config.Config) OfflineReport {
	var r OfflineReport
	away := awayFor(s.LastSaveTime, now, time.Duration(cfg.Offline.CapHours*float64(time.Hour)))
	if away == 0 {
		return r
	}
	r.Seconds = away.Seconds()

	for _, h := range s.Heroes {
		if !h.Unlocked || h.IsDead {
			continue
		}
		switch h.Assignment {
		case hero.AssignMine:
			r.Miners++
		case hero.AssignCombat:
			r.Fighters++
		}
	}

	r.Copper = float64(r.Miners) * r.Seconds * cfg.Offline.CopperPerMinerSecond
	r.Kills = int64(math.Floor(r.Seconds / cfg.Offline.SecondsPerKill * float64(r.Fighters) / cfg.Offline.PartySize))
	rw := rewards(cfg, s.Guild.Level)
	perKill := math.Floor(float64(s.Boss.Level) * rw.GoldPerBossLevel * rw.GuildGoldMult)
	r.Gold = r.Kills * int64(perKill)
	return r
}

// ApplyOffline credits the offline estimate to the live state.
func (e *Engine) ApplyOffline(ctx context.Context) (OfflineReport, error) {
	var r OfflineReport
	_, err := e.mutate(ctx, func(s *State) error {
		now := e.Clock.Now()
		r = OfflineGains(s, now, e.Config)
		if r.Seconds == 0 {
			return nil
		}
		s.Wallet.Copper += r.Copper
		s.Stats.CopperMined += r.Copper
		s.Wallet.Add(loot.Drop{Type: loot.Gold, Amount: r.Gold})
		s.Stats.GoldEarned += r.Gold
		if r.Gold > 0 || r.Copper > 0 {
			e.appendLog(s, now, "While you were away: %d kills, +%d gold, +%.0f copper", r.Kills, r.Gold, r.Copper)
		}
		return nil
	})
	if err != nil {
		return OfflineReport{}, err
	}
	if r.Seconds > 0 {
		e.record([]pendingEvent{{telemetry.EventOfflineGains, telemetry.EventMetadata{
			"seconds": r.Seconds, "kills": r.Kills, "gold": r.Gold, "copper": r.Copper,
		}}})
	}
	return r, nil
}
