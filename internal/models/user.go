// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, соль и хэш пароля, а также набор
// активных bearer-токенов. Структура используется в бизнес-логике
// и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// Токены — непрозрачные строки сессий; валиден любой токен,
// присутствующий в наборе. Сервис токены не чистит: logout и
// истечение срока жизни не реализованы.
type User struct {
	ID           string    `json:"id"`            // Уникальный идентификатор пользователя
	Name         string    `json:"name"`          // Отображаемое имя
	Email        string    `json:"email"`         // Электронная почта, уникальна
	PasswordHash string    `json:"password_hash"` // sha256(salt + password) в hex
	Salt         string    `json:"salt"`          // Случайная соль пользователя, hex
	Tokens       []string  `json:"tokens"`        // Активные bearer-токены
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
