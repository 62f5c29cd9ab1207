package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/travel-planner/internal/models"
)

// CreateTrip вставляет новую поездку целиком и возвращает её ID.
// Поездка после вставки не изменяется.
func (s *Storage) CreateTrip(ctx context.Context, trip models.Trip) (string, error) {
	const op = "storage.CreateTrip"
	if err := s.available(ctx, op); err != nil {
		return "", err
	}

	itinerary, err := json.Marshal(trip.Itinerary)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	newID := uuid.New().String()
	query := `INSERT INTO trips (id, user_id, title, prompt, days, itinerary,
			      destination, budget, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id`
	if err := s.DB.QueryRowContext(ctx, query,
		newID, trip.UserID, trip.Title, trip.Prompt, trip.Days, itinerary,
		nullString(trip.Destination), nullString(trip.Budget),
		trip.CreatedAt, trip.UpdatedAt).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListTripsByUserID возвращает все поездки пользователя,
// отсортированные по дате создания по убыванию.
func (s *Storage) ListTripsByUserID(ctx context.Context, userID string) ([]*models.Trip, error) {
	const op = "storage.ListTripsByUserID"
	if err := s.available(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT id, user_id, title, prompt, days, itinerary,
			      destination, budget, created_at, updated_at
			  FROM trips
			  WHERE user_id = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Trip
	for rows.Next() {
		var item models.Trip
		var itinerary []byte
		var destination, budget sql.NullString
		if err := rows.Scan(&item.ID, &item.UserID, &item.Title, &item.Prompt, &item.Days,
			&itinerary, &destination, &budget, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := json.Unmarshal(itinerary, &item.Itinerary); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		item.Destination = destination.String
		item.Budget = budget.String
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// nullString превращает пустую строку в NULL для опциональных колонок.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
