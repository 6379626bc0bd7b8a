package serverapp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/applog"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/combat"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/game"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/save"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/tavern"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/telemetry"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/ui/page"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"
)

var errBadBody = errors.New("invalid request body")

const maxBody = 1 << 20

// StateResponse is the state plus the values derived from it.
type StateResponse struct {
	*game.State
	TickIntervalMs int64            `json:"tickIntervalMs"`
	SummonCost     int64            `json:"summonCost"`
	Multiplier     float64          `json:"multiplier"`
	Synergies      []combat.Synergy `json:"synergies"`
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadBody, err)
	}
	return nil
}

func (a *api) ready(w http.ResponseWriter, r *http.Request) {
	if _, err := a.opts.Engine.Snapshot(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"ok":    false,
			"error": "game state unavailable",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"service": "rpg-eternal",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (a *api) state(w http.ResponseWriter, r *http.Request) {
	e := a.opts.Engine
	s, rev, versioned, err := e.VersionedSnapshot(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if versioned {
		etag := `"` + strconv.FormatUint(rev, 10) + `"`
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", etag)
	}
	d, err := e.TickInterval(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StateResponse{
		State:          s,
		TickIntervalMs: d.Milliseconds(),
		SummonCost:     e.SummonCost(s),
		Multiplier:     e.Multiplier(s),
		Synergies:      e.Synergies(s),
	})
}

func (a *api) stats(w http.ResponseWriter, r *http.Request) {
	since := time.Now().Add(-24 * time.Hour)
	if v := r.URL.Query().Get("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeErr(w, fmt.Errorf("%w: since: %v", errBadBody, err))
			return
		}
		since = t
	}
	events, err := a.opts.Events.GetEvents(since, nil)
	if err != nil {
		writeErr(w, err)
		return
	}
	stats, err := telemetry.CalculateStats(events, since)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type recentEvents interface {
	Recent(n int) []telemetry.Event
}

func (a *api) events(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 1000 {
			writeErr(w, fmt.Errorf("%w: limit must be 1..1000", errBadBody))
			return
		}
		limit = n
	}
	if rec, ok := a.opts.Events.(recentEvents); ok {
		writeJSON(w, http.StatusOK, rec.Recent(limit))
		return
	}
	all, err := a.opts.Events.GetEvents(time.Time{}, nil)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]telemetry.Event, 0, limit)
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *api) heroResult(w http.ResponseWriter, h hero.Hero, err error) {
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h)
}

func (a *api) assign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Assignment string `json:"assignment"`
	}
	if err := decode(r, &body); err != nil {
		writeErr(w, err)
		return
	}
	h, err := a.opts.Engine.SetAssignment(r.Context(), mux.Vars(r)["id"], hero.Assignment(body.Assignment))
	a.heroResult(w, h, err)
}

func (a *api) equip(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ItemID string `json:"itemId"`
	}
	if err := decode(r, &body); err != nil {
		writeErr(w, err)
		return
	}
	h, err := a.opts.Engine.Equip(r.Context(), mux.Vars(r)["id"], body.ItemID)
	a.heroResult(w, h, err)
}

func (a *api) unequip(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Slot string `json:"slot"`
	}
	if err := decode(r, &body); err != nil {
		writeErr(w, err)
		return
	}
	h, err := a.opts.Engine.Unequip(r.Context(), mux.Vars(r)["id"], hero.Slot(body.Slot))
	a.heroResult(w, h, err)
}

func (a *api) revive(w http.ResponseWriter, r *http.Request) {
	h, err := a.opts.Engine.Revive(r.Context(), mux.Vars(r)["id"])
	a.heroResult(w, h, err)
}

func (a *api) unlock(w http.ResponseWriter, r *http.Request) {
	h, err := a.opts.Engine.Unlock(r.Context(), mux.Vars(r)["id"])
	a.heroResult(w, h, err)
}

func (a *api) stat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Stat string `json:"stat"`
	}
	if err := decode(r, &body); err != nil {
		writeErr(w, err)
		return
	}
	h, err := a.opts.Engine.AllocateStatPoint(r.Context(), mux.Vars(r)["id"], body.Stat)
	a.heroResult(w, h, err)
}

func (a *api) summon(w http.ResponseWriter, r *http.Request) {
	h, err := a.opts.Engine.Summon(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, h)
}

func (a *api) speed(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Speed float64 `json:"speed"`
	}
	if err := decode(r, &body); err != nil {
		writeErr(w, err)
		return
	}
	if err := a.opts.Engine.SetGameSpeed(r.Context(), body.Speed); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"speed": body.Speed})
}

func (a *api) tower(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Active bool `json:"active"`
	}
	if err := decode(r, &body); err != nil {
		writeErr(w, err)
		return
	}
	if err := a.opts.Engine.SetTower(r.Context(), body.Active); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"active": body.Active})
}

func (a *api) automation(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AutoSummon bool `json:"autoSummon"`
	}
	if err := decode(r, &body); err != nil {
		writeErr(w, err)
		return
	}
	if err := a.opts.Engine.SetAutoSummon(r.Context(), body.AutoSummon); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"autoSummon": body.AutoSummon})
}

func (a *api) saveNow(w http.ResponseWriter, r *http.Request) {
	if a.opts.Store == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "saving is disabled"})
		return
	}
	s, err := a.opts.Engine.Checkpoint(r.Context())
	if err == nil {
		err = a.opts.Store.Save(r.Context(), s)
	}
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "lastSaveTime": s.LastSaveTime})
}

func (a *api) export(w http.ResponseWriter, r *http.Request) {
	s, err := a.opts.Engine.Checkpoint(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	raw, err := save.Encode(s)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"code": save.Export(raw)})
}

// importSave replaces the live state, persists it and credits offline gains
// since the export was taken, as a fresh load would.
func (a *api) importSave(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code string `json:"code"`
	}
	if err := decode(r, &body); err != nil {
		writeErr(w, err)
		return
	}
	raw, err := save.Import(body.Code)
	if err != nil {
		writeErr(w, err)
		return
	}
	s, err := save.Decode(raw, tavern.Templates())
	if err != nil {
		writeErr(w, fmt.Errorf("%w: %v", save.ErrInvalidImport, err))
		return
	}
	if err := a.opts.Engine.Replace(r.Context(), s); err != nil {
		writeErr(w, err)
		return
	}
	if a.opts.Store != nil {
		if err := a.opts.Store.Repo.Store(r.Context(), raw); err != nil {
			writeErr(w, err)
			return
		}
	}
	report, err := a.opts.Engine.ApplyOffline(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	applog.Info(a.opts.Logger, "save imported", map[string]any{"heroes": len(s.Heroes), "boss_level": s.Boss.Level})
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "offline": report})
}

func (a *api) page(w http.ResponseWriter, r *http.Request) {
	s, err := a.opts.Engine.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	templ.Handler(page.StatusPage(page.FromState(s, time.Now()))).ServeHTTP(w, r)
}
