package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/invoicedash/internal/config"
	"github.com/GlebRadaev/invoicedash/internal/handlers"
	"github.com/GlebRadaev/invoicedash/internal/pg"
	"github.com/GlebRadaev/invoicedash/internal/repo"
	"github.com/GlebRadaev/invoicedash/internal/service"
	"github.com/GlebRadaev/invoicedash/pkg/auth"
	"github.com/GlebRadaev/invoicedash/pkg/logger"
	"github.com/GlebRadaev/invoicedash/pkg/viewcache"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	pool  *pgxpool.Pool
	views viewcache.Cache

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}

	views, err := viewcache.New(viewcache.Config{
		Driver:       cfg.CacheDriver,
		RedisAddress: cfg.RedisAddress,
		TTL:          cfg.CacheTTL,
	})
	if err != nil {
		zap.L().Error("view cache failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't build view cache: %w", err)
	}
	zap.L().Info("view cache ready", zap.String("driver", cfg.CacheDriver))

	tokens := auth.NewJWTService(cfg.AuthSecret, cfg.SessionTTL)

	a.cfg = cfg
	a.pool = pool
	a.views = views
	a.repo = repo.New(pg.New(pool), pg.NewTXManager(pool))
	a.srv = service.New(a.repo, views, tokens)
	a.api = handlers.New(a.srv, tokens)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.closeResources()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// closeResources releases the pool and, for the redis driver, the cache client.
func (a *Application) closeResources() {
	if closer, ok := a.views.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			zap.L().Error("view cache close failed", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
