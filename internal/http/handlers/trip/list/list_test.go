package list

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/travel-planner/internal/http/middlewarectx"
	"github.com/magabrotheeeer/travel-planner/internal/models"
	"github.com/magabrotheeeer/travel-planner/internal/storage/repository"
)

// Мок сервиса с методом List
type TripServiceMock struct {
	mock.Mock
}

func (m *TripServiceMock) List(ctx context.Context, user *models.User) ([]*models.Trip, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Trip), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestListHandler_ServeHTTP(t *testing.T) {
	user := &models.User{ID: "uid-1", Name: "Alice", Email: "alice@example.com"}

	tests := []struct {
		name           string
		withUser       bool
		setupMocks     func(s *TripServiceMock)
		wantStatusCode int
		wantCount      int
		wantError      string
		wantStatus     string
	}{
		{
			name:     "returns trips newest first",
			withUser: true,
			setupMocks: func(s *TripServiceMock) {
				s.On("List", mock.Anything, user).Return([]*models.Trip{
					{ID: "trip-2", UserID: "uid-1", Title: "Newer"},
					{ID: "trip-1", UserID: "uid-1", Title: "Older"},
				}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantCount:      2,
			wantStatus:     "OK",
		},
		{
			name:     "nil result becomes empty list",
			withUser: true,
			setupMocks: func(s *TripServiceMock) {
				s.On("List", mock.Anything, user).Return([]*models.Trip(nil), nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantCount:      0,
			wantStatus:     "OK",
		},
		{
			name:           "no user in context",
			withUser:       false,
			setupMocks:     func(_ *TripServiceMock) {},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "unauthorized",
			wantStatus:     "Error",
		},
		{
			name:     "database not configured",
			withUser: true,
			setupMocks: func(s *TripServiceMock) {
				s.On("List", mock.Anything, user).
					Return(nil, repository.ErrStorageUnavailable).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "database not configured",
			wantStatus:     "Error",
		},
		{
			name:     "service error",
			withUser: true,
			setupMocks: func(s *TripServiceMock) {
				s.On("List", mock.Anything, user).
					Return(nil, errors.New("query failed")).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "could not list trips",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(TripServiceMock)
			tt.setupMocks(serviceMock)
			handler := New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			if tt.withUser {
				ctx = context.WithValue(ctx, middlewarectx.User, user)
			}
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantStatus, got["status"])
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				data, ok := got["data"].([]any)
				assert.True(t, ok)
				assert.Len(t, data, tt.wantCount)
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
