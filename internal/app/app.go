package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	redisclient "github.com/yungbote/crm-backend/internal/clients/redis"
	storedb "github.com/yungbote/crm-backend/internal/data/db"
	apphttp "github.com/yungbote/crm-backend/internal/http"
	"github.com/yungbote/crm-backend/internal/jobs"
	"github.com/yungbote/crm-backend/internal/observability"
	"github.com/yungbote/crm-backend/internal/platform/envutil"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

const serviceName = "crm-backend"

type App struct {
	Log       *logger.Logger
	DB        *gorm.DB
	Cfg       Config
	Repos     Repos
	Services  Services
	Metrics   *observability.Metrics
	Server    *apphttp.Server
	Scheduler *jobs.Scheduler

	store        *storedb.Service
	liveness     redisclient.Liveness
	jobLogs      jobLogs
	otelShutdown func(context.Context) error
	started      bool
}

func New() (*App, error) {
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	otelShutdown := observability.InitOTel(context.Background(), log,
		observability.OtelConfigFromEnv(serviceName, cfg.Environment, cfg.Version))

	store, err := storedb.Open(log, cfg.Store)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init store: %w", err)
	}
	if err := store.AutoMigrateAll(); err != nil {
		_ = store.Close()
		log.Sync()
		return nil, fmt.Errorf("store automigrate: %w", err)
	}
	theDB := store.DB()

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics(log)
	}

	var liveness redisclient.Liveness
	if cfg.RedisAddr != "" {
		liveness, err = redisclient.NewLiveness(context.Background(), log, redisclient.LivenessConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Key:      cfg.LivenessKey,
			TTL:      cfg.LivenessTTL,
		})
		if err != nil {
			// Liveness is optional; heartbeats still go to the log file.
			log.Warn("Redis liveness disabled", "error", err)
			liveness = nil
		}
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, reposet, metrics)
	handlerset := wireHandlers(log, serviceset, liveness)
	server := wireServer(log, cfg, handlerset, metrics, serviceName)

	a := &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Metrics:      metrics,
		Server:       server,
		store:        store,
		liveness:     liveness,
		otelShutdown: otelShutdown,
	}

	if cfg.JobsEnabled {
		scheduler, logs, err := wireJobs(log, cfg, serviceset, liveness, metrics)
		a.jobLogs = logs
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("init jobs: %w", err)
		}
		a.Scheduler = scheduler
	}

	return a, nil
}

// Start launches the background scheduler. It is a no-op when jobs are off.
func (a *App) Start() {
	if a == nil || a.started {
		return
	}
	a.started = true
	if a.Scheduler != nil {
		a.Scheduler.Start()
	}
}

// Run serves HTTP until ctx is cancelled and then stops the scheduler.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Start()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := ":" + a.Cfg.Port
		a.Log.Info("HTTP server listening", "addr", addr)
		return a.Server.Run(gctx, addr, a.Cfg.ShutdownTimeout)
	})
	g.Go(func() error {
		<-gctx.Done()
		if a.Scheduler != nil {
			a.Scheduler.Stop()
		}
		return nil
	})

	err := g.Wait()
	a.Log.Info("Shutdown complete")
	return err
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Scheduler != nil && a.started {
		a.Scheduler.Stop()
		a.started = false
	}
	a.jobLogs.Sync()
	if a.liveness != nil {
		if err := a.liveness.Close(); err != nil {
			a.Log.Warn("Redis close failed", "error", err)
		}
		a.liveness = nil
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.Background()); err != nil {
			a.Log.Warn("OTel shutdown failed", "error", err)
		}
		a.otelShutdown = nil
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.Log.Warn("Store close failed", "error", err)
		}
		a.store = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
