// Package services содержит логику бизнес-уровня для регистрации,
// аутентификации и разрешения bearer-токенов в пользователя.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/magabrotheeeer/travel-planner/internal/lib/password"
	"github.com/magabrotheeeer/travel-planner/internal/lib/token"
	"github.com/magabrotheeeer/travel-planner/internal/models"
	"github.com/magabrotheeeer/travel-planner/internal/storage/repository"
)

// ErrInvalidCredentials единая ошибка для неизвестного email и неверного
// пароля: ответ не позволяет перебирать зарегистрированные адреса.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnauthorized токен отсутствует или не принадлежит ни одному пользователю.
var ErrUnauthorized = errors.New("unauthorized")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email, регистрозависимо.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByToken возвращает пользователя, владеющего токеном.
	GetUserByToken(ctx context.Context, token string) (*models.User, error)

	// AppendToken добавляет токен в набор пользователя и обновляет updated_at.
	AppendToken(ctx context.Context, userID, token string, updatedAt time.Time) error
}

// AuthService отвечает за регистрацию, вход и разрешение токенов.
type AuthService struct {
	users UserRepository
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register создает нового пользователя: генерирует соль, хэширует пароль
// и выпускает первый токен сессии. Возвращает сохранённого пользователя
// и токен. Повторная регистрация email даёт repository.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword string) (*models.User, string, error) {
	const op = "services.auth.Register"

	// Предварительная проверка сохраняет прежнее поведение; финальную
	// точку ставит уникальный индекс в базе, он же закрывает гонку
	// конкурентных регистраций.
	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, "", fmt.Errorf("%s: %w", op, repository.ErrEmailTaken)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	salt, err := password.NewSalt()
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	tok, err := token.New()
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password.Hash(rawPassword, salt),
		Salt:         salt,
		Tokens:       []string{tok},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, "", err
	}
	user.ID = id
	return &user, tok, nil
}

// Login проверяет пароль пользователя и выпускает новый токен сессии.
// Неизвестный email и неверный пароль дают одну и ту же ошибку.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.User, string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return nil, "", err
	}
	if !password.Compare(user.PasswordHash, rawPassword, user.Salt) {
		return nil, "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	tok, err := token.New()
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	if err := s.users.AppendToken(ctx, user.ID, tok, now); err != nil {
		return nil, "", err
	}
	user.Tokens = append(user.Tokens, tok)
	user.UpdatedAt = now
	return user, tok, nil
}

// ResolveToken разрешает значение заголовка Authorization в пользователя.
// Префикс "Bearer " снимается, если есть; его отсутствие не ошибка.
// Пустой или неизвестный токен даёт ErrUnauthorized.
func (s *AuthService) ResolveToken(ctx context.Context, bearerHeader string) (*models.User, error) {
	const op = "services.auth.ResolveToken"

	tok := strings.TrimSpace(strings.TrimPrefix(bearerHeader, "Bearer "))
	if tok == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	user, err := s.users.GetUserByToken(ctx, tok)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
		}
		return nil, err
	}
	return user, nil
}
