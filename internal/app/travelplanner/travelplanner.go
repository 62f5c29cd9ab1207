// Package travelplanner собирает приложение: хранилище, кеш, сервисы,
// маршруты и HTTP-сервер с корректным завершением.
package travelplanner

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/travel-planner/internal/cache"
	"github.com/magabrotheeeer/travel-planner/internal/config"
	"github.com/magabrotheeeer/travel-planner/internal/lib/sl"
	"github.com/magabrotheeeer/travel-planner/internal/migrations"
	authservice "github.com/magabrotheeeer/travel-planner/internal/services/auth"
	tripservice "github.com/magabrotheeeer/travel-planner/internal/services/trip"
	"github.com/magabrotheeeer/travel-planner/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New создаёт приложение. Отсутствие строки подключения к базе не
// фатально: сервер стартует, / и /test остаются доступны, а эндпоинты
// данных отвечают фиксированной ошибкой о ненастроенном хранилище.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db := &repository.Storage{}
	if cfg.StorageConnectionString == "" {
		logger.Warn("DATABASE_URL is not set, data endpoints are degraded")
	} else {
		connected, err := repository.New(cfg.StorageConnectionString)
		if err != nil {
			logger.Warn("failed to connect to storage, data endpoints are degraded", sl.Err(err))
		} else {
			if err := migrations.Run(connected.DB, cfg.MigrationsPath); err != nil {
				return nil, err
			}
			db = connected
		}
	}

	var tripCache tripservice.Cache = cache.Noop{}
	if cfg.AddressRedis != "" {
		cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			logger.Warn("failed to connect to redis, cache is disabled", sl.Err(err))
		} else {
			tripCache = cacheRedis
		}
	}

	authService := authservice.NewAuthService(db)
	tripService := tripservice.NewTripService(db, tripCache, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, db, authService, tripService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и корректно гасит его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if a.db.DB != nil {
			_ = a.db.DB.Close()
		}
		return err
	}
}
