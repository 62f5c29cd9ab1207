package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/travel-planner/internal/models"
)

// CreateUser сохраняет нового пользователя и возвращает его ID.
// Уникальность email обеспечивает индекс в базе: нарушение
// транслируется в ErrEmailTaken, что закрывает гонку
// проверка-потом-вставка между конкурентными регистрациями.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	if err := s.available(ctx, op); err != nil {
		return "", err
	}

	tokens, err := json.Marshal(user.Tokens)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	newID := uuid.New().String()
	query := `INSERT INTO users (id, name, email, password_hash, salt, tokens, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		newID, user.Name, user.Email, user.PasswordHash, user.Salt, tokens,
		user.CreatedAt, user.UpdatedAt).Scan(&newID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return "", fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetUserByEmail возвращает пользователя по email.
// Сравнение регистрозависимое, как в исходной системе.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	if err := s.available(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT id, name, email, password_hash, salt, tokens, created_at, updated_at
			  FROM users
			  WHERE email = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, email), op)
}

// GetUserByToken возвращает пользователя, в наборе токенов которого
// присутствует данный токен.
func (s *Storage) GetUserByToken(ctx context.Context, token string) (*models.User, error) {
	const op = "storage.GetUserByToken"
	if err := s.available(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT id, name, email, password_hash, salt, tokens, created_at, updated_at
			  FROM users
			  WHERE tokens @> to_jsonb($1::text)`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, token), op)
}

// AppendToken добавляет токен в набор пользователя и обновляет updated_at.
// Токены из набора никогда не удаляются: отзыв и истечение не реализованы.
func (s *Storage) AppendToken(ctx context.Context, userID, token string, updatedAt time.Time) error {
	const op = "storage.AppendToken"
	if err := s.available(ctx, op); err != nil {
		return err
	}

	query := `UPDATE users
			  SET tokens = tokens || to_jsonb($1::text),
			      updated_at = $2
			  WHERE id = $3`
	result, err := s.DB.ExecContext(ctx, query, token, updatedAt, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

func (s *Storage) scanUser(row *sql.Row, op string) (*models.User, error) {
	u := &models.User{}
	var tokens []byte
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Salt,
		&tokens, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(tokens, &u.Tokens); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
