package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/travel-planner/internal/models"
	services "github.com/magabrotheeeer/travel-planner/internal/services/trip"
)

// Мок для TripRepository
type TripRepoMock struct {
	mock.Mock
}

func (m *TripRepoMock) CreateTrip(ctx context.Context, trip models.Trip) (string, error) {
	args := m.Called(ctx, trip)
	return args.String(0), args.Error(1)
}

func (m *TripRepoMock) ListTripsByUserID(ctx context.Context, userID string) ([]*models.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Trip), args.Error(1)
}

// Мок для Cache
type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(n int) *int { return &n }

func TestTripService_Create(t *testing.T) {
	user := &models.User{ID: "uid-1", Email: "a@x.com"}

	tests := []struct {
		name       string
		req        models.DummyTrip
		setupMocks func(r *TripRepoMock, c *CacheMock)
		wantErr    bool
		wantTitle  string
	}{
		{
			name: "explicit title is kept",
			req:  models.DummyTrip{Prompt: "beaches and food", Days: intPtr(2), Destination: "Lisbon", Title: "My Trip"},
			setupMocks: func(r *TripRepoMock, c *CacheMock) {
				r.On("CreateTrip", mock.Anything, mock.MatchedBy(func(trip models.Trip) bool {
					return trip.UserID == "uid-1" && trip.Title == "My Trip" && len(trip.Itinerary) == 2
				})).Return("trip-1", nil).Once()
				c.On("Invalidate", "trips:uid-1").Return(nil).Once()
			},
			wantTitle: "My Trip",
		},
		{
			name: "title falls back to destination and days",
			req:  models.DummyTrip{Prompt: "beaches", Days: intPtr(3), Destination: "Lisbon"},
			setupMocks: func(r *TripRepoMock, c *CacheMock) {
				r.On("CreateTrip", mock.Anything, mock.Anything).Return("trip-2", nil).Once()
				c.On("Invalidate", "trips:uid-1").Return(nil).Once()
			},
			wantTitle: "Lisbon • 3 days",
		},
		{
			name: "title falls back without destination",
			req:  models.DummyTrip{Prompt: "beaches", Days: intPtr(5)},
			setupMocks: func(r *TripRepoMock, c *CacheMock) {
				r.On("CreateTrip", mock.Anything, mock.Anything).Return("trip-3", nil).Once()
				c.On("Invalidate", "trips:uid-1").Return(nil).Once()
			},
			wantTitle: "Custom Trip • 5 days",
		},
		{
			name: "repository error is returned",
			req:  models.DummyTrip{Prompt: "beaches", Days: intPtr(1)},
			setupMocks: func(r *TripRepoMock, _ *CacheMock) {
				r.On("CreateTrip", mock.Anything, mock.Anything).
					Return("", errors.New("insert failed")).Once()
			},
			wantErr: true,
		},
		{
			name: "cache invalidation failure is not fatal",
			req:  models.DummyTrip{Prompt: "beaches", Days: intPtr(1)},
			setupMocks: func(r *TripRepoMock, c *CacheMock) {
				r.On("CreateTrip", mock.Anything, mock.Anything).Return("trip-4", nil).Once()
				c.On("Invalidate", "trips:uid-1").Return(errors.New("redis down")).Once()
			},
			wantTitle: "Custom Trip • 1 days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(TripRepoMock)
			cache := new(CacheMock)
			tt.setupMocks(repo, cache)
			svc := services.NewTripService(repo, cache, discardLogger())

			trip, err := svc.Create(context.Background(), user, tt.req)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, trip.ID)
				assert.Equal(t, tt.wantTitle, trip.Title)
				assert.Equal(t, "uid-1", trip.UserID)
				assert.Len(t, trip.Itinerary, *tt.req.Days)
			}

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestTripService_List(t *testing.T) {
	user := &models.User{ID: "uid-1"}
	stored := []*models.Trip{
		{ID: "trip-2", UserID: "uid-1", Title: "Newer"},
		{ID: "trip-1", UserID: "uid-1", Title: "Older"},
	}

	t.Run("cache miss falls through to repository", func(t *testing.T) {
		repo := new(TripRepoMock)
		cache := new(CacheMock)
		cache.On("Get", "trips:uid-1", mock.Anything).Return(false, nil).Once()
		repo.On("ListTripsByUserID", mock.Anything, "uid-1").Return(stored, nil).Once()
		cache.On("Set", "trips:uid-1", stored, time.Hour).Return(nil).Once()

		svc := services.NewTripService(repo, cache, discardLogger())
		trips, err := svc.List(context.Background(), user)

		require.NoError(t, err)
		assert.Equal(t, stored, trips)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		repo := new(TripRepoMock)
		cache := new(CacheMock)
		cache.On("Get", "trips:uid-1", mock.Anything).Return(true, nil).Once()

		svc := services.NewTripService(repo, cache, discardLogger())
		_, err := svc.List(context.Background(), user)

		require.NoError(t, err)
		repo.AssertNotCalled(t, "ListTripsByUserID", mock.Anything, mock.Anything)
		cache.AssertExpectations(t)
	})

	t.Run("cache read failure falls back to repository", func(t *testing.T) {
		repo := new(TripRepoMock)
		cache := new(CacheMock)
		cache.On("Get", "trips:uid-1", mock.Anything).Return(false, errors.New("redis down")).Once()
		repo.On("ListTripsByUserID", mock.Anything, "uid-1").Return(stored, nil).Once()
		cache.On("Set", "trips:uid-1", stored, time.Hour).Return(nil).Once()

		svc := services.NewTripService(repo, cache, discardLogger())
		trips, err := svc.List(context.Background(), user)

		require.NoError(t, err)
		assert.Equal(t, stored, trips)
		repo.AssertExpectations(t)
	})

	t.Run("repository error is returned", func(t *testing.T) {
		repo := new(TripRepoMock)
		cache := new(CacheMock)
		cache.On("Get", "trips:uid-1", mock.Anything).Return(false, nil).Once()
		repo.On("ListTripsByUserID", mock.Anything, "uid-1").
			Return(nil, errors.New("query failed")).Once()

		svc := services.NewTripService(repo, cache, discardLogger())
		_, err := svc.List(context.Background(), user)

		require.Error(t, err)
		repo.AssertExpectations(t)
	})
}
