package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Creates a temporary YAML config file in a temporary directory.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err, "Failed to write temporary config file")

	return configPath
}

const validYAML = `
env: "test"
public_base_url: "https://shop.turbokart.example"
http_server:
  address: ":8081"
storage:
  STORAGE_DRIVER: "redis"
  SNAPSHOT_TTL: "720h"
redis:
  REDIS_HOST: "redishost"
  REDIS_PORT: "6380"
  REDIS_USER: "redisuser"
  REDIS_PASSWORD: "redispassword"
  REDIS_DB: 1
database:
  PG_HOST: "dbhost"
  PG_PORT: "5433"
  PG_USER: "testuser"
  PG_PASSWORD: "testpassword"
  PG_DBNAME: "testdb"
  PG_SSLMODE: "disable"
coinbase:
  COINBASE_COMMERCE_API_KEY: "cb_test_key"
  COINBASE_COMMERCE_WEBHOOK_SECRET: "whsec_test"
  CURRENCY: "USD"
  TIMEOUT: "5s"
sendgrid:
  API_KEY: "sg_test_123"
  FROM_EMAIL: "test@example.com"
  FROM_NAME: "Test Service"
otel:
  SERVICE_NAME: "test-service"
  EXPORTER_ENDPOINT: "http://otel:4318/v1/traces"
  SAMPLER_RATIO: 0.5
`

func TestLoadConfigFromPath(t *testing.T) {

	t.Run("Success - Values From YAML", func(t *testing.T) {
		// Arrange
		configPath := createTempConfigFile(t, validYAML)

		// Act
		cfg, err := LoadConfigFromPath(configPath)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "test", cfg.Env)
		assert.Equal(t, ":8081", cfg.HTTPServer.Addr)
		assert.Equal(t, "https://shop.turbokart.example", cfg.PublicBaseURL)
		assert.Equal(t, StorageDriverRedis, cfg.Storage.Driver)
		assert.Equal(t, 720*time.Hour, cfg.Storage.SnapshotTTL)
		assert.Equal(t, "redisuser", cfg.RedisConnect.Username)
		assert.Equal(t, "cb_test_key", cfg.Coinbase.APIKey)
		assert.Equal(t, "whsec_test", cfg.Coinbase.WebhookSecret)
		assert.Equal(t, 5*time.Second, cfg.Coinbase.Timeout)
		assert.Equal(t, "https://api.commerce.coinbase.com", cfg.Coinbase.BaseURL, "default base URL should apply")
		assert.Equal(t, "2018-03-22", cfg.Coinbase.APIVersion, "default API version should apply")
		assert.Equal(t, 0.5, cfg.Otel.SamplerRatio)
		assert.True(t, cfg.SendGridEnabled())
	})

	t.Run("Success - Environment Variable Override", func(t *testing.T) {
		// Arrange
		configPath := createTempConfigFile(t, validYAML)
		t.Setenv("COINBASE_COMMERCE_API_KEY", "cb_env_key")
		t.Setenv("REDIS_HOST", "env-redis")

		// Act
		cfg, err := LoadConfigFromPath(configPath)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "cb_env_key", cfg.Coinbase.APIKey)
		assert.Equal(t, "env-redis", cfg.RedisConnect.Host)
	})

	t.Run("Failure - Missing File", func(t *testing.T) {
		// Act
		cfg, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "missing.yaml"))

		// Assert
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "config file does not exist")
	})

	t.Run("Failure - Missing API Key", func(t *testing.T) {
		// Arrange
		configPath := createTempConfigFile(t, `
env: "test"
coinbase:
  COINBASE_COMMERCE_WEBHOOK_SECRET: "whsec_test"
`)

		// Act
		cfg, err := LoadConfigFromPath(configPath)

		// Assert
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "COINBASE_COMMERCE_API_KEY")
	})

	t.Run("Failure - Unknown Storage Driver", func(t *testing.T) {
		// Arrange
		configPath := createTempConfigFile(t, `
env: "test"
storage:
  STORAGE_DRIVER: "etcd"
coinbase:
  COINBASE_COMMERCE_API_KEY: "cb_test_key"
`)

		// Act
		_, err := LoadConfigFromPath(configPath)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown storage driver")
	})

	t.Run("Failure - Postgres Without Credentials", func(t *testing.T) {
		// Arrange
		configPath := createTempConfigFile(t, `
env: "test"
storage:
  STORAGE_DRIVER: "postgres"
coinbase:
  COINBASE_COMMERCE_API_KEY: "cb_test_key"
`)

		// Act
		_, err := LoadConfigFromPath(configPath)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PG_USER")
	})
}

func TestDSN(t *testing.T) {
	db := Database{User: "u", Password: "p", Host: "h", Port: "5432", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", db.GetDSN())

	r := RedisConnect{Host: "h", Port: "6379", DB: 2}
	assert.Equal(t, "redis://h:6379/2", r.GetDSN())

	r.Username, r.Password = "u", "p"
	assert.Equal(t, "redis://u:p@h:6379/2", r.GetDSN())
}
