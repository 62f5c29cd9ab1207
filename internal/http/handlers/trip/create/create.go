// Package create реализует HTTP-обработчик генерации новой поездки.
//
// Handler принимает JSON-запрос с текстовым описанием поездки, валидирует
// его, достаёт пользователя из контекста и делегирует создание сервису.
// Количество дней по умолчанию равно 3 и ограничено диапазоном 1..30:
// запрос отклоняется до запуска генерации маршрута.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/travel-planner/internal/http/middlewarectx"
	"github.com/magabrotheeeer/travel-planner/internal/http/response"
	"github.com/magabrotheeeer/travel-planner/internal/lib/sl"
	"github.com/magabrotheeeer/travel-planner/internal/models"
	"github.com/magabrotheeeer/travel-planner/internal/storage/repository"
)

// defaultDays количество дней поездки, если клиент его не указал.
const defaultDays = 3

// Service описывает интерфейс бизнес-логики создания поездки.
type Service interface {
	Create(ctx context.Context, user *models.User, req models.DummyTrip) (*models.Trip, error)
}

// Handler управляет HTTP-запросами на создание поездок.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать новую поездку
// @Description Генерирует маршрут по текстовому описанию и сохраняет поездку. Возвращает созданный документ целиком.
// @Tags Trips
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyTrip true "Описание желаемой поездки"
// @Success 200 {object} response.Response "Созданная поездка"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "База не настроена или внутренняя ошибка"
// @Router /api/trips [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.trip.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyTrip
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	// Значение по умолчанию только при отсутствии поля:
	// явный 0 доходит до валидации и отклоняется.
	if req.Days == nil {
		days := defaultDays
		req.Days = &days
	}
	log.Info("request body decoded", slog.Int("days", *req.Days))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	trip, err := h.service.Create(r.Context(), user, req)
	if err != nil {
		if errors.Is(err, repository.ErrStorageUnavailable) {
			log.Error("storage is not configured", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("database not configured"))
			return
		}
		log.Error("failed to create trip", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create trip"))
		return
	}

	log.Info("trip created", slog.String("id", trip.ID))
	render.JSON(w, r, response.OKWithData(trip))
}
