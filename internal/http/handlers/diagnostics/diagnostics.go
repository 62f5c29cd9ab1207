// Package diagnostics реализует HTTP-обработчик эндпоинта /test:
// сводка о состоянии бэкенда и доступности базы данных. Эндпоинт
// не требует аутентификации и работает даже без настроенной базы,
// что позволяет использовать его для health-check контейнера.
package diagnostics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-planner/internal/lib/sl"
	"github.com/magabrotheeeer/travel-planner/internal/storage/repository"
)

// maxTables сколько имён таблиц попадает в отчёт.
const maxTables = 10

// maxErrorLen до скольких символов обрезается текст ошибки базы.
const maxErrorLen = 80

// Storage описывает методы хранилища, нужные для диагностики.
type Storage interface {
	Ping(ctx context.Context) error
	ListTables(ctx context.Context, limit int) ([]string, error)
}

// Report — структура диагностического ответа.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Tables           []string `json:"tables"`
}

type Handler struct {
	log     *slog.Logger
	storage Storage
	urlSet  bool
	nameSet bool
}

// New создает Handler. urlSet и nameSet сообщают, заданы ли переменные
// окружения подключения: сами значения в ответ не попадают.
func New(log *slog.Logger, storage Storage, urlSet, nameSet bool) *Handler {
	return &Handler{
		log:     log,
		storage: storage,
		urlSet:  urlSet,
		nameSet: nameSet,
	}
}

// ServeHTTP godoc
// @Summary Диагностика подключения к базе данных
// @Description Сообщает, настроена ли база, удаётся ли подключение и какие таблицы видны.
// @Tags Health
// @Produce  json
// @Success 200 {object} Report
// @Router /test [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.diagnostics"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	report := Report{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      setOrNot(h.urlSet),
		DatabaseName:     setOrNot(h.nameSet),
		ConnectionStatus: "not connected",
		Tables:           []string{},
	}

	if err := h.storage.Ping(r.Context()); err != nil {
		log.Warn("database ping failed", sl.Err(err))
		// Несконфигурированная база — штатное состояние, а не ошибка.
		if !errors.Is(err, repository.ErrStorageUnavailable) {
			report.Database = "error: " + truncate(err.Error(), maxErrorLen)
		}
		render.JSON(w, r, report)
		return
	}

	report.Database = "available"
	report.ConnectionStatus = "connected"

	tables, err := h.storage.ListTables(r.Context(), maxTables)
	if err != nil {
		log.Warn("failed to list tables", sl.Err(err))
	} else if tables != nil {
		report.Tables = tables
	}

	render.JSON(w, r, report)
}

func setOrNot(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

func truncate(s string, limit int) string {
	if runes := []rune(s); len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}
