package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	redisclient "github.com/yungbote/personservice-backend/internal/clients/redis"
	"github.com/yungbote/personservice-backend/internal/data/db"
	apphttp "github.com/yungbote/personservice-backend/internal/http"
	"github.com/yungbote/personservice-backend/internal/mediator"
	"github.com/yungbote/personservice-backend/internal/observability"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

const serviceName = "personservice"

type App struct {
	Log      *logger.Logger
	Cfg      Config
	DB       *db.Service
	Repos    Repos
	Cache    redisclient.AccountCache
	Mediator *mediator.Mediator
	Metrics  *observability.Metrics
	Server   *apphttp.Server

	otelShutdown func(context.Context) error
}

func New(ctx context.Context, cfg Config) (*App, error) {
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		Enabled:     cfg.Otel.Enabled,
		ServiceName: serviceName,
		Environment: cfg.LogMode,
		Exporter:    cfg.Otel.Exporter,
		Endpoint:    cfg.Otel.Endpoint,
		Insecure:    cfg.Otel.Insecure,
		SampleRatio: cfg.Otel.SampleRatio,
	})

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics()
	}

	database, err := db.Open(db.Config{
		Driver:           cfg.DB.Driver,
		DSN:              cfg.DB.DSN,
		PostgresHost:     cfg.DB.Postgres.Host,
		PostgresPort:     cfg.DB.Postgres.Port,
		PostgresUser:     cfg.DB.Postgres.User,
		PostgresPassword: cfg.DB.Postgres.Password,
		PostgresName:     cfg.DB.Postgres.Name,
		SQLitePath:       cfg.DB.SQLitePath,
	}, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	theDB := database.DB()

	cache := wireAccountCache(cfg, log)
	reposet := wireRepos(theDB, log)
	m := wireMediator(theDB, log, reposet, cache, metrics)
	handlerset := wireHandlers(theDB, log, m)
	server := wireServer(cfg, log, handlerset, metrics)

	return &App{
		Log:          log,
		Cfg:          cfg,
		DB:           database,
		Repos:        reposet,
		Cache:        cache,
		Mediator:     m,
		Metrics:      metrics,
		Server:       server,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", a.Server.Addr())
		return a.Server.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout())
		defer cancel()
		a.Log.Info("Shutting down HTTP server")
		return a.Server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout())
	defer cancel()
	if a.otelShutdown != nil {
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil {
			a.Log.Warn("Closing account cache failed", "error", err)
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Log.Warn("Closing database failed", "error", err)
		}
	}
	a.Log.Sync()
}
