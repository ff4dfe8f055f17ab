package daemon

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/strikerhq/striker/internal/api"
	"github.com/strikerhq/striker/internal/app/progress"
	"github.com/strikerhq/striker/internal/domain"
	"github.com/strikerhq/striker/internal/health"
	"github.com/strikerhq/striker/internal/infra/catalog"
	_ "github.com/strikerhq/striker/internal/infra/metrics" // Register Prometheus metrics
	"github.com/strikerhq/striker/internal/infra/sqlite"
)

// Daemon is the core Striker runtime. It wires together all services.
type Daemon struct {
	Config  Config
	DB      *sqlite.DB
	Catalog *catalog.Library
	Store   *progress.Store
	Server  *api.Server
	Health  *health.Checker

	cancel context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	dir := cfg.Storage.Dir
	if dir == "" {
		dir = strikerHome()
	}

	db, err := sqlite.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	lib := catalog.New()

	userID, err := loadOrCreateUserID(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("user id: %w", err)
	}

	store, err := progress.NewStore(userID, lib, db, cfg.profile(), time.Now)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init progress store: %w", err)
	}

	checker := health.NewChecker(db, dir)

	srv := api.NewServer(store, lib)
	srv.SetHealthChecker(checker)
	srv.SetCORSOrigins(cfg.API.CORSOrigins)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config:  cfg,
		DB:      db,
		Catalog: lib,
		Store:   store,
		Server:  srv,
		Health:  checker,
	}, nil
}

// profile converts the config's profile section into generator inputs.
func (c Config) profile() progress.Profile {
	p := progress.Profile{
		Position:   domain.Position(c.Profile.Position),
		Tier:       domain.ExperienceTier(c.Profile.SkillLevel),
		WeeklyGoal: c.Profile.WeeklyGoal,
	}
	for _, g := range c.Profile.Goals {
		p.Goals = append(p.Goals, domain.SkillCategory(g))
	}
	return p
}

// loadOrCreateUserID returns the installation's stable user id,
// generating one on first run. The id also seeds the daily workout
// selection, so it must survive restarts.
func loadOrCreateUserID(db *sqlite.DB) (string, error) {
	id, err := db.GetAppInfo("user_id")
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}
	id = uuid.NewString()
	if err := db.SetAppInfo("user_id", id); err != nil {
		return "", err
	}
	return id, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	// Background app-open tracker shares the store's serialization
	// discipline with foreground mutations.
	if interval := d.Config.TrackerInterval(); interval > 0 {
		go d.Store.RunAppOpenTracker(ctx, interval)
	}
	go d.Health.Run(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[daemon] shutdown: %v", err)
		}
		_ = d.DB.Close()
	}()

	fmt.Printf("Striker serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
}
