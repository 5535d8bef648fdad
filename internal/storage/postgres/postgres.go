package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/config"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/storage"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/utils"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
)

const schema = `
	CREATE TABLE IF NOT EXISTS storefront_snapshots (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		expires_at TIMESTAMPTZ,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

type postgresStorage struct {
	DB      *sql.DB
	timeout time.Duration
}

// Open connects through the instrumented driver and checks the connection.
func Open(ctx context.Context, cfg *config.Database) (*sql.DB, error) {

	db, err := otelsql.Open("postgres", cfg.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("Successfully connected to Postgres", slog.String("host", cfg.Host), slog.String("database", cfg.Name))

	return db, nil
}

func New(db *sql.DB, timeout time.Duration) storage.Storage {
	return &postgresStorage{DB: db, timeout: timeout}
}

// EnsureSchema creates the snapshot table when it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create snapshot table: %w", err)
	}

	return nil
}

func (p *postgresStorage) Get(ctx context.Context, key string, value any) (bool, error) {

	dbCtx, cancel := utils.WithStorageTimeout(ctx, p.timeout)
	defer cancel()

	query := `
		SELECT value
		FROM storefront_snapshots
		WHERE key = $1 AND (expires_at IS NULL OR expires_at > NOW())
	`

	var data []byte
	if err := p.DB.QueryRowContext(dbCtx, query, key).Scan(&data); err != nil {

		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("failed to get key %s from postgres: %w", key, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal data for key %s: %w: %w", key, storage.ErrCorruptValue, err)
	}

	return true, nil
}

func (p *postgresStorage) Set(ctx context.Context, key string, value any, ttl time.Duration) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	dbCtx, cancel := utils.WithStorageTimeout(ctx, p.timeout)
	defer cancel()

	query := `
		INSERT INTO storefront_snapshots (key, value, expires_at, updated_at)
		VALUES ($1, $2, NOW() + NULLIF($3::bigint, 0) * INTERVAL '1 second', NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = NOW()
	`

	seconds := max(int64(ttl/time.Second), 0)

	if _, err := p.DB.ExecContext(dbCtx, query, key, data, seconds); err != nil {
		return fmt.Errorf("failed to set key %s in postgres: %w", key, err)
	}

	return nil
}

func (p *postgresStorage) Delete(ctx context.Context, key string) error {

	dbCtx, cancel := utils.WithStorageTimeout(ctx, p.timeout)
	defer cancel()

	if _, err := p.DB.ExecContext(dbCtx, `DELETE FROM storefront_snapshots WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete key %s from postgres: %w", key, err)
	}

	return nil
}

func (p *postgresStorage) Ping(ctx context.Context) error {
	return p.DB.PingContext(ctx)
}

func (p *postgresStorage) Close() error {
	return p.DB.Close()
}
