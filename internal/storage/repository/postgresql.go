// Package repository реализует хранилище данных на основе PostgreSQL
// для пользователей и поездок. Две таблицы повторяют структуру
// документов: наборы токенов и маршруты хранятся как JSONB-колонки.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища. Обработчики транслируют их в фиксированные
// HTTP-статусы, сервисы пробрасывают как есть.
var (
	// ErrStorageUnavailable база не сконфигурирована или недоступна.
	ErrStorageUnavailable = errors.New("storage is not configured")
	// ErrNotFound запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken пользователь с таким email уже зарегистрирован.
	ErrEmailTaken = errors.New("email already registered")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
// Нулевое значение (DB == nil) — валидное "хранилище не настроено":
// каждый метод в этом случае возвращает ErrStorageUnavailable,
// а сервер продолжает отдавать / и /test.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его ping-ом.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// available проверяет, что база сконфигурирована и контекст жив.
func (s *Storage) available(ctx context.Context, op string) error {
	if s == nil || s.DB == nil {
		return fmt.Errorf("%s: %w", op, ErrStorageUnavailable)
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}
	return nil
}

// Ping проверяет доступность базы данных.
func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.Ping"
	if err := s.available(ctx, op); err != nil {
		return err
	}
	if err := s.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListTables возвращает имена пользовательских таблиц, не больше limit.
// Используется диагностическим эндпоинтом /test.
func (s *Storage) ListTables(ctx context.Context, limit int) ([]string, error) {
	const op = "storage.ListTables"
	if err := s.available(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT table_name
			  FROM information_schema.tables
			  WHERE table_schema = 'public'
			  ORDER BY table_name
			  LIMIT $1`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
