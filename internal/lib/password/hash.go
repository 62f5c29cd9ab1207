// Package password реализует функции для хеширования и проверки паролей.
//
// Хранится не сам пароль, а hex-дайджест sha256(salt + password) вместе
// с индивидуальной солью пользователя. Соль генерируется криптографически
// стойким генератором и не даёт использовать готовые словари хэшей.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// saltSize размер соли в байтах до hex-кодирования.
const saltSize = 16

// NewSalt генерирует случайную соль и возвращает её в hex.
func NewSalt() (string, error) {
	const op = "password.NewSalt"
	buf := make([]byte, saltSize)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return hex.EncodeToString(buf), nil
}

// Hash возвращает hex-дайджест sha256 от конкатенации соли и пароля.
func Hash(rawPassword, salt string) string {
	sum := sha256.Sum256([]byte(salt + rawPassword))
	return hex.EncodeToString(sum[:])
}

// Compare проверяет, что пароль с данной солью даёт сохранённый хэш.
// Возвращает true при совпадении.
func Compare(storedHash, rawPassword, salt string) bool {
	expected := Hash(rawPassword, salt)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(storedHash)) == 1
}
