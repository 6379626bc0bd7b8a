package serverapp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/config"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/game"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/httpmw"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/save"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/telemetry"

	"github.com/gorilla/mux"
)

type Options struct {
	Config  *config.Config
	Engine  *game.Engine
	Store   *save.Store
	Events  telemetry.Repository
	Limiter *httpmw.ClientLimiter
	Logger  *log.Logger
}

type api struct {
	opts Options
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Engine == nil {
		return nil, errors.New("engine is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Events == nil {
		opts.Events = telemetry.NewMemoryRepository()
	}
	a := &api{opts: opts}
	r := mux.NewRouter()
	rr := &RouteRegistry{}

	handle(r, rr, http.MethodGet, "/healthz", "liveness probe", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "rpg-eternal",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})
	handle(r, rr, http.MethodGet, "/readyz", "readiness probe", "", a.ready)

	handle(r, rr, http.MethodGet, "/api/state", "full game state", "", a.state)
	handle(r, rr, http.MethodGet, "/api/stats", "telemetry stats; ?since=RFC3339", "", a.stats)
	handle(r, rr, http.MethodGet, "/api/events", "newest telemetry events; ?limit=N (default 50)", "", a.events)
	handle(r, rr, http.MethodGet, "/api/routes", "this list", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rr.List())
	})
	handle(r, rr, http.MethodGet, "/api/config", "effective configuration", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, opts.Config)
	})

	handle(r, rr, http.MethodPost, "/api/heroes/{id}/assignment", "move a hero", `{"assignment":"mine"}`, a.assign)
	handle(r, rr, http.MethodPost, "/api/heroes/{id}/equip", "equip an inventory item", `{"itemId":"it_1_1"}`, a.equip)
	handle(r, rr, http.MethodPost, "/api/heroes/{id}/unequip", "return a slot to the inventory", `{"slot":"weapon"}`, a.unequip)
	handle(r, rr, http.MethodPost, "/api/heroes/{id}/revive", "revive a dead hero for gold", "", a.revive)
	handle(r, rr, http.MethodPost, "/api/heroes/{id}/unlock", "recruit a locked starting hero", "", a.unlock)
	handle(r, rr, http.MethodPost, "/api/heroes/{id}/stat", "spend a stat point", `{"stat":"attack"}`, a.stat)
	handle(r, rr, http.MethodPost, "/api/tavern/summon", "summon a random hero", "", a.summon)
	handle(r, rr, http.MethodPost, "/api/speed", "set game speed", `{"speed":2}`, a.speed)
	handle(r, rr, http.MethodPost, "/api/tower", "start or stop the tower climb", `{"active":true}`, a.tower)
	handle(r, rr, http.MethodPost, "/api/automation", "toggle auto-summon", `{"autoSummon":true}`, a.automation)

	handle(r, rr, http.MethodPost, "/api/save", "save now", "", a.saveNow)
	handle(r, rr, http.MethodGet, "/api/save/export", "base64 export of the current state", "", a.export)
	handle(r, rr, http.MethodPost, "/api/save/import", "replace the state from an export", `{"code":"eyJ2ZXJzaW9uIjoxfQ=="}`, a.importSave)

	handle(r, rr, http.MethodGet, "/", "status page", "", a.page)

	return httpmw.Chain(
		r,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
		httpmw.WithRateLimit(opts.Limiter),
	), nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]any{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrUnknownHero), errors.Is(err, game.ErrUnknownItem), errors.Is(err, save.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrInsufficientGold):
		return http.StatusPaymentRequired
	case errors.Is(err, game.ErrHeroLocked), errors.Is(err, game.ErrHeroNotDead),
		errors.Is(err, game.ErrHeroUnlocked), errors.Is(err, game.ErrRosterFull):
		return http.StatusConflict
	case errors.Is(err, game.ErrInvalidSpeed), errors.Is(err, game.ErrNoStatPoints),
		errors.Is(err, game.ErrInvalidStat), errors.Is(err, hero.ErrInvalidAssignment),
		errors.Is(err, hero.ErrInvalidSlot), errors.Is(err, save.ErrInvalidImport),
		errors.Is(err, errBadBody):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
