// Package travelplanner предоставляет маршруты для основного приложения.
package travelplanner

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/travel-planner/internal/config"
	"github.com/magabrotheeeer/travel-planner/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/travel-planner/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/travel-planner/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/travel-planner/internal/http/handlers/diagnostics"
	"github.com/magabrotheeeer/travel-planner/internal/http/handlers/health"
	tripcreate "github.com/magabrotheeeer/travel-planner/internal/http/handlers/trip/create"
	triplist "github.com/magabrotheeeer/travel-planner/internal/http/handlers/trip/list"
	"github.com/magabrotheeeer/travel-planner/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/travel-planner/internal/services/auth"
	tripservice "github.com/magabrotheeeer/travel-planner/internal/services/trip"
	"github.com/magabrotheeeer/travel-planner/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config,
	db *repository.Storage, authService *authservice.AuthService, tripService *tripservice.TripService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки: живы даже без настроенной базы
	r.Get("/", health.New(logger).ServeHTTP)
	r.Get("/test", diagnostics.New(logger, db,
		cfg.StorageConnectionString != "", cfg.DatabaseName != "").ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)

		// Группа с проверкой bearer-токена
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AuthMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/me", me.New(logger).ServeHTTP)
			r.Post("/trips", tripcreate.New(logger, tripService).ServeHTTP)
			r.Get("/trips", triplist.New(logger, tripService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
