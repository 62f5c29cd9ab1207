// Package middlewarectx содержит HTTP middleware для проверки bearer-токенов.
//
// AuthMiddleware разрешает токен из заголовка Authorization в пользователя
// через сервис аутентификации и кладёт его в контекст запроса. Токен
// непрозрачный: его валидность определяется только наличием в наборе
// токенов какого-либо пользователя в хранилище.
//
// При отсутствии или невалидности токена возвращается HTTP 401 ещё до
// выполнения логики обработчика.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-planner/internal/http/response"
	"github.com/magabrotheeeer/travel-planner/internal/lib/sl"
	"github.com/magabrotheeeer/travel-planner/internal/models"
	"github.com/magabrotheeeer/travel-planner/internal/storage/repository"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// User — ключ для пользователя в контексте.
const User Key = "user"

// Service описывает интерфейс сервиса для разрешения токена в пользователя.
type Service interface {
	ResolveToken(ctx context.Context, bearerHeader string) (*models.User, error)
}

// AuthMiddleware возвращает HTTP middleware, который разрешает bearer-токен
// из заголовка Authorization. Префикс "Bearer " необязателен.
//
// Если токен валиден, кладёт *models.User в контекст запроса, иначе
// возвращает 401 Unauthorized; недоступность хранилища даёт 500.
func AuthMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			user, err := authService.ResolveToken(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				if errors.Is(err, repository.ErrStorageUnavailable) {
					log.Error("storage is not configured", sl.Err(err))
					render.Status(r, http.StatusInternalServerError)
					render.JSON(w, r, response.Error("database not configured"))
					return
				}
				log.Error("invalid or missing token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			ctx := context.WithValue(r.Context(), User, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext достаёт пользователя, положенного AuthMiddleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(User).(*models.User)
	return user, ok && user != nil
}
