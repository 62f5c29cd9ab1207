// Package list реализует HTTP-обработчик выдачи поездок пользователя.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-planner/internal/http/middlewarectx"
	"github.com/magabrotheeeer/travel-planner/internal/http/response"
	"github.com/magabrotheeeer/travel-planner/internal/lib/sl"
	"github.com/magabrotheeeer/travel-planner/internal/models"
	"github.com/magabrotheeeer/travel-planner/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики выдачи поездок.
type Service interface {
	List(ctx context.Context, user *models.User) ([]*models.Trip, error)
}

// Handler управляет HTTP-запросами списка поездок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список поездок пользователя
// @Description Возвращает все поездки текущего пользователя, новые первыми.
// @Tags Trips
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Список поездок"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "База не настроена или внутренняя ошибка"
// @Router /api/trips [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.trip.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	trips, err := h.service.List(r.Context(), user)
	if err != nil {
		if errors.Is(err, repository.ErrStorageUnavailable) {
			log.Error("storage is not configured", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("database not configured"))
			return
		}
		log.Error("failed to list trips", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list trips"))
		return
	}

	if trips == nil {
		trips = []*models.Trip{}
	}
	log.Info("trips listed", slog.Int("count", len(trips)))
	render.JSON(w, r, response.OKWithData(trips))
}
