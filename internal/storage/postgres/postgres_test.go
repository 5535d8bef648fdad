package postgres_test

import (
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/storage"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/storage/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestData struct {
	Field1 string `json:"field1"`
}

func setupPostgresTest(t *testing.T) (storage.Storage, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return postgres.New(db, time.Second), mock, db
}

var (
	selectSQL = `SELECT value\s+FROM storefront_snapshots\s+WHERE key = \$1`
	upsertSQL = regexp.QuoteMeta(`INSERT INTO storefront_snapshots (key, value, expires_at, updated_at)`)
	deleteSQL = regexp.QuoteMeta(`DELETE FROM storefront_snapshots WHERE key = $1`)
)

func TestGet(t *testing.T) {
	ctx := t.Context()
	key := storage.Key(storage.CartKeyPrefix, "client-1")

	t.Run("Success - Row Found", func(t *testing.T) {
		// Arrange
		s, mock, _ := setupPostgresTest(t)
		mock.ExpectQuery(selectSQL).
			WithArgs(key).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"field1":"cart"}`)))

		// Act
		var got TestData
		found, err := s.Get(ctx, key, &got)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "cart", got.Field1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No Row", func(t *testing.T) {
		// Arrange
		s, mock, _ := setupPostgresTest(t)
		mock.ExpectQuery(selectSQL).WithArgs(key).WillReturnError(sql.ErrNoRows)

		// Act
		var got TestData
		found, err := s.Get(ctx, key, &got)

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Query Error", func(t *testing.T) {
		// Arrange
		s, mock, _ := setupPostgresTest(t)
		mock.ExpectQuery(selectSQL).WithArgs(key).WillReturnError(errors.New("connection reset"))

		// Act
		var got TestData
		found, err := s.Get(ctx, key, &got)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.Contains(t, err.Error(), "failed to get key")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Corrupt Value", func(t *testing.T) {
		// Arrange
		s, mock, _ := setupPostgresTest(t)
		mock.ExpectQuery(selectSQL).
			WithArgs(key).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[1,2`)))

		// Act
		var got TestData
		found, err := s.Get(ctx, key, &got)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.True(t, errors.Is(err, storage.ErrCorruptValue))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	key := storage.Key(storage.PendingOrderKeyPrefix, "client-1")
	value := TestData{Field1: "order"}
	data, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Success - Upsert With TTL", func(t *testing.T) {
		// Arrange
		s, mock, _ := setupPostgresTest(t)
		mock.ExpectExec(upsertSQL).
			WithArgs(key, data, int64(3600)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := s.Set(ctx, key, value, time.Hour)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Upsert Without TTL", func(t *testing.T) {
		// Arrange
		s, mock, _ := setupPostgresTest(t)
		mock.ExpectExec(upsertSQL).
			WithArgs(key, data, int64(0)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := s.Set(ctx, key, value, 0)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Exec Error", func(t *testing.T) {
		// Arrange
		s, mock, _ := setupPostgresTest(t)
		mock.ExpectExec(upsertSQL).
			WithArgs(key, data, int64(0)).
			WillReturnError(errors.New("disk full"))

		// Act
		err := s.Set(ctx, key, value, 0)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to set key")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	key := storage.Key(storage.PendingOrderKeyPrefix, "client-1")

	t.Run("Success", func(t *testing.T) {
		// Arrange
		s, mock, _ := setupPostgresTest(t)
		mock.ExpectExec(deleteSQL).WithArgs(key).WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := s.Delete(ctx, key)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Exec Error", func(t *testing.T) {
		// Arrange
		s, mock, _ := setupPostgresTest(t)
		mock.ExpectExec(deleteSQL).WithArgs(key).WillReturnError(errors.New("timeout"))

		// Act
		err := s.Delete(ctx, key)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete key")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEnsureSchema(t *testing.T) {
	// Arrange
	_, mock, db := setupPostgresTest(t)
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS storefront_snapshots`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Act
	err := postgres.EnsureSchema(t.Context(), db)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
