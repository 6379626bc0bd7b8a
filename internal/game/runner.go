package game

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/applog"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/telemetry"
)

// Saver persists a checkpointed state.
type Saver interface {
	Save(ctx context.Context, s *State) error
}

// Runner drives the engine: one timer for ticks, re-armed after every tick
// with the interval the new state asks for, and a ticker for autosaves.
type Runner struct {
	Engine   *Engine
	Saver    Saver
	Autosave time.Duration
	Logger   *log.Logger
}

func NewRunner(e *Engine, saver Saver, autosave time.Duration, logger *log.Logger) *Runner {
	if autosave <= 0 {
		autosave = 5 * time.Second
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Runner{Engine: e, Saver: saver, Autosave: autosave, Logger: logger}
}

// Run blocks until ctx is cancelled, then writes a final save.
func (r *Runner) Run(ctx context.Context) error {
	d, err := r.Engine.TickInterval(ctx)
	if err != nil {
		return err
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	autosave := time.NewTicker(r.Autosave)
	defer autosave.Stop()

	applog.Info(r.Logger, "runner started", map[string]any{"interval_ms": d.Milliseconds(), "autosave_ms": r.Autosave.Milliseconds()})
	for {
		select {
		case <-ctx.Done():
			sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			err := r.save(sctx)
			cancel()
			applog.Info(r.Logger, "runner stopped", nil)
			return err
		case <-autosave.C:
			_ = r.save(ctx)
		case <-timer.C:
			res, err := r.Engine.Tick(ctx)
			if err != nil {
				applog.Error(r.Logger, "tick failed", map[string]any{"err": err.Error()})
			} else if res.BossDefeated {
				applog.Info(r.Logger, "boss defeated", map[string]any{"level": res.DefeatedLevel, "gold": res.Gold})
			}
			if next, err := r.Engine.TickInterval(ctx); err == nil {
				d = next
			}
			timer.Reset(d)
		}
	}
}

func (r *Runner) save(ctx context.Context) error {
	if r.Saver == nil {
		return nil
	}
	s, err := r.Engine.Checkpoint(ctx)
	if err == nil {
		err = r.Saver.Save(ctx, s)
	}
	if err != nil {
		applog.Error(r.Logger, "autosave failed", map[string]any{"err": err.Error()})
		return err
	}
	r.Engine.record([]pendingEvent{{telemetry.EventSaveWritten, telemetry.EventMetadata{"heroes": len(s.Heroes), "boss_level": s.Boss.Level}}})
	return nil
}
