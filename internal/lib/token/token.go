// Package token выпускает непрозрачные bearer-токены сессий.
//
// Токен — это hex случайных байт без встроенных claims и срока жизни.
// Валидность токена определяется только его присутствием в наборе
// токенов пользователя в хранилище.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenSize размер токена в байтах до hex-кодирования.
const tokenSize = 24

// New генерирует новый случайный токен.
func New() (string, error) {
	const op = "token.New"
	buf := make([]byte, tokenSize)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return hex.EncodeToString(buf), nil
}
