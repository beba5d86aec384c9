package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/analyzer"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/config"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/handlers"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/llm"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/pg"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/repo"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/service"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/storage"
	"github.com/mattedesign/figmant-759992b3-sub008/pkg/clients"
	"github.com/mattedesign/figmant-759992b3-sub008/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	analyzer *analyzer.Service

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
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	store, err := storage.New(ctx, cfg.Storage.Endpoint, cfg.Storage.Region, cfg.Storage.Bucket,
		cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.UseSSL)
	if err != nil {
		zap.L().Error("object storage init failed: ", zap.Error(err))
		return fmt.Errorf("can't init object storage: %w", err)
	}

	client, err := llm.New(cfg.LLM, clients.NewHTTPClient())
	if err != nil {
		return fmt.Errorf("can't init llm client: %w", err)
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, txManager, service.Options{
		JWTSecret:       cfg.JWTSecret,
		BalanceCacheTTL: cfg.BalanceCacheTTL,
		Store:           store,
	})
	a.api = handlers.New(a.srv, handlers.Options{
		CORSOrigins:    cfg.CORSOrigins,
		MaxUploadBytes: cfg.MaxUploadMB << 20,
		DB:             conn,
	})
	a.analyzer = analyzer.New(cfg.Analysis, a.repo.UploadRepo, a.repo.AnalysisRepo, a.srv.CreditService, store, client)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startAnalyzer(ctx)

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
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
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
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startAnalyzer(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.analyzer.Start(ctx)
	}()
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
