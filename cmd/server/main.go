package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/applog"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/combat"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/config"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/game"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/httpmw"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/save"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/serverapp"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/telemetry"
)

func main() {
	cfgPath := flag.String("config", "rpg.yaml", "path to config file")
	flag.Parse()

	logger := log.Default()
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		applog.Warn(logger, "dotenv load failed", map[string]any{"error": err.Error()})
	}

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		log.Fatal(err)
	}
}

type app struct {
	cfg     *config.Config
	repo    save.Repo
	engine  *game.Engine
	runner  *game.Runner
	handler http.Handler
}

// freshState is a new game running at the configured speed.
func freshState(cfg *config.Config) *game.State {
	st := game.NewState()
	st.GameSpeed = cfg.Loop.GameSpeed
	return st
}

// build wires storage, the engine and the HTTP handler. A missing or
// unreadable save starts a fresh game.
func build(ctx context.Context, cfg *config.Config, logger *log.Logger) (*app, error) {
	repo, err := save.Open(cfg.Save)
	if err != nil {
		return nil, fmt.Errorf("open saves: %w", err)
	}
	store := save.NewStore(repo)

	st, found, err := store.Load(ctx)
	switch {
	case err != nil:
		applog.Error(logger, "save unreadable, starting fresh", map[string]any{
			"slot":  cfg.Save.Slot,
			"error": err.Error(),
		})
		st = freshState(cfg)
	case !found:
		applog.Info(logger, "no save found, starting fresh", map[string]any{"slot": cfg.Save.Slot})
		st = freshState(cfg)
	}

	seed := time.Now().UnixNano()
	if cfg.SeededRNG.Enabled {
		seed = cfg.SeededRNG.Seed
	}
	events := telemetry.NewMemoryRepository()
	engine := game.NewEngine(cfg, game.NewMemoryStateRepo(st), events, game.RealClock{}, combat.NewRNG(seed), logger)

	if rep, err := engine.ApplyOffline(ctx); err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("offline gains: %w", err)
	} else if rep.Seconds > 0 {
		applog.Info(logger, "offline gains applied", map[string]any{
			"seconds": rep.Seconds,
			"copper":  rep.Copper,
			"kills":   rep.Kills,
			"gold":    rep.Gold,
		})
	}

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config:  cfg,
		Engine:  engine,
		Store:   store,
		Events:  events,
		Limiter: httpmw.NewClientLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst),
		Logger:  logger,
	})
	if err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("build server: %w", err)
	}

	autosave := time.Duration(cfg.Save.AutosaveSeconds) * time.Second
	return &app{
		cfg:     cfg,
		repo:    repo,
		engine:  engine,
		runner:  game.NewRunner(engine, store, autosave, logger),
		handler: handler,
	}, nil
}

func run(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	a, err := build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.repo.Close()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           a.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.runner.Run(gctx)
	})
	g.Go(func() error {
		applog.Info(logger, "listening", map[string]any{"addr": cfg.Server.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
