package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Методы несконфигурированного хранилища отвечают ErrStorageUnavailable,
// контейнер для этого не нужен.
func TestStorage_Unconfigured(t *testing.T) {
	storage := &Storage{}
	ctx := context.Background()

	err := storage.Ping(ctx)
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = storage.ListTables(ctx, 10)
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = storage.GetUserByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = storage.GetUserByToken(ctx, "tok")
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	err = storage.AppendToken(ctx, "uid", "tok", time.Now())
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = storage.ListTripsByUserID(ctx, "uid")
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestStorage_CancelledContext(t *testing.T) {
	// sql.Open не устанавливает соединение, хватает для проверки контекста.
	db, err := sql.Open("pgx", "postgres://localhost:5432/none")
	require.NoError(t, err)
	storage := &Storage{DB: db}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = storage.GetUserByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, context.Canceled)
}
