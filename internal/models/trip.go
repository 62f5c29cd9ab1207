// Package models содержит доменные структуры поездки и плана дня,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Trip представляет сгенерированную поездку пользователя.
// Поездка создаётся целиком и дальше не изменяется: операций
// обновления и удаления нет.
type Trip struct {
	ID          string    `json:"id"`      // Идентификатор, назначается хранилищем
	UserID      string    `json:"user_id"` // Владелец поездки
	Title       string    `json:"title"`
	Prompt      string    `json:"prompt"` // Исходный текст запроса без ограничения длины
	Days        int       `json:"days"`
	Itinerary   []DayPlan `json:"itinerary"` // Ровно Days элементов, Day == индекс+1
	Destination string    `json:"destination"` // Пустая строка, если направление не задано
	Budget      string    `json:"budget"`      // shoestring | standard | luxury, хранится как прислал клиент
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DayPlan описывает один день маршрута. Полностью производная
// структура: генерируется из запроса и отдельно не изменяется.
type DayPlan struct {
	Day       int    `json:"day"` // Номер дня, начиная с 1
	Theme     string `json:"theme"`
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

// DummyTrip используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Trip.
//
// Days — указатель, чтобы отличать отсутствующее поле от явного нуля:
// отсутствие даёт значение по умолчанию, явный 0 отклоняется валидацией.
type DummyTrip struct {
	Prompt      string `json:"prompt" validate:"required"`             // Описание желаемой поездки
	Days        *int   `json:"days" validate:"omitempty,min=1,max=30"` // Количество дней, 1..30
	Destination string `json:"destination,omitempty"`                  // Направление (опционально)
	Budget      string `json:"budget,omitempty"`                       // shoestring | standard | luxury
	Title       string `json:"title,omitempty"`                        // Явный заголовок (опционально)
}
