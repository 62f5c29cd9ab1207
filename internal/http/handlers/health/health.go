package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type Handler struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

// ServeHTTP godoc
// @Summary Проверка работоспособности
// @Description Возвращает приветственное сообщение, если сервис запущен.
// @Tags Health
// @Produce  json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	render.JSON(w, r, map[string]string{
		"message": "Travel Planner Backend is running",
	})
}
