// Package services содержит бизнес-логику создания и выдачи поездок,
// включая кеширование списков.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/travel-planner/internal/lib/itinerary"
	"github.com/magabrotheeeer/travel-planner/internal/lib/sl"
	"github.com/magabrotheeeer/travel-planner/internal/models"
)

// TripRepository определяет методы для работы с поездками в хранилище.
type TripRepository interface {
	// CreateTrip вставляет поездку и возвращает её ID.
	CreateTrip(ctx context.Context, trip models.Trip) (string, error)
	// ListTripsByUserID возвращает поездки пользователя, новые первыми.
	ListTripsByUserID(ctx context.Context, userID string) ([]*models.Trip, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// TripService реализует бизнес-логику работы с поездками.
type TripService struct {
	repo  TripRepository
	cache Cache
	log   *slog.Logger
}

// NewTripService создает новый экземпляр TripService.
func NewTripService(repo TripRepository, cache Cache, log *slog.Logger) *TripService {
	return &TripService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create генерирует маршрут и сохраняет поездку от имени пользователя.
// Количество дней валидируется на HTTP-границе (1..30), здесь оно
// считается корректным. Возвращает сохранённую поездку с её ID.
func (s *TripService) Create(ctx context.Context, user *models.User, req models.DummyTrip) (*models.Trip, error) {
	days := 0
	if req.Days != nil {
		days = *req.Days
	}
	plans := itinerary.Generate(req.Prompt, days, req.Destination, req.Budget)

	title := req.Title
	if title == "" {
		destination := req.Destination
		if destination == "" {
			destination = "Custom Trip"
		}
		title = fmt.Sprintf("%s • %d days", destination, days)
	}

	now := time.Now().UTC()
	trip := models.Trip{
		UserID:      user.ID,
		Title:       title,
		Prompt:      req.Prompt,
		Days:        days,
		Itinerary:   plans,
		Destination: req.Destination,
		Budget:      req.Budget,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.repo.CreateTrip(ctx, trip)
	if err != nil {
		return nil, err
	}
	trip.ID = id
	s.log.Info("created new trip", slog.String("id", id), slog.Int("days", trip.Days))

	cacheKey := tripsCacheKey(user.ID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate trips cache", slog.String("key", cacheKey), sl.Err(err))
	}

	return &trip, nil
}

// List возвращает все поездки пользователя, новые первыми,
// используя кеш или репозиторий.
func (s *TripService) List(ctx context.Context, user *models.User) ([]*models.Trip, error) {
	var result []*models.Trip
	cacheKey := tripsCacheKey(user.ID)

	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read trips cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ListTripsByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache trips", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}

func tripsCacheKey(userID string) string {
	return fmt.Sprintf("trips:%s", userID)
}
