// Package sl содержит мелкие помощники для структурированного
// логирования через slog.
package sl

import "log/slog"

// Err оборачивает ошибку в атрибут с ключом "error": все записи об
// ошибках получают в логе одинаковое поле.
//
//	log.Error("failed to create trip", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.String("error", err.Error())
}
