package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

const (
	StorageDriverMemory   = "memory"
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
)

// Storage selects where cart and pending-order snapshots live. A zero
// SnapshotTTL keeps snapshots until they are cleared.
type Storage struct {
	Driver      string        `yaml:"STORAGE_DRIVER" env:"STORAGE_DRIVER" env-default:"memory"`
	SnapshotTTL time.Duration `yaml:"SNAPSHOT_TTL" env:"SNAPSHOT_TTL" env-default:"0s"`
	Timeout     time.Duration `yaml:"TIMEOUT" env:"STORAGE_TIMEOUT" env-default:"3s"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"30m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type Coinbase struct {
	APIKey        string        `yaml:"COINBASE_COMMERCE_API_KEY" env:"COINBASE_COMMERCE_API_KEY"`
	WebhookSecret string        `yaml:"COINBASE_COMMERCE_WEBHOOK_SECRET" env:"COINBASE_COMMERCE_WEBHOOK_SECRET"`
	BaseURL       string        `yaml:"BASE_URL" env:"COINBASE_COMMERCE_BASE_URL" env-default:"https://api.commerce.coinbase.com"`
	APIVersion    string        `yaml:"API_VERSION" env:"COINBASE_COMMERCE_API_VERSION" env-default:"2018-03-22"`
	Currency      string        `yaml:"CURRENCY" env:"COINBASE_COMMERCE_CURRENCY" env-default:"USD"`
	Timeout       time.Duration `yaml:"TIMEOUT" env:"COINBASE_COMMERCE_TIMEOUT" env-default:"15s"`
}

type SendGrid struct {
	APIKey    string `yaml:"API_KEY" env:"SENDGRID_API_KEY"`
	FromEmail string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"orders@turbokart.example"`
	FromName  string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"TurboKart"`
}

type Otel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"turbokart-storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env           string `yaml:"env" env:"ENV" env-required:"true"`
	PublicBaseURL string `yaml:"public_base_url" env:"PUBLIC_BASE_URL" env-default:"http://localhost:8080"`
	HTTPServer    `yaml:"http_server"`
	Storage       Storage      `yaml:"storage"`
	Database      Database     `yaml:"database"`
	RedisConnect  RedisConnect `yaml:"redis"`
	Coinbase      Coinbase     `yaml:"coinbase"`
	SendGrid      SendGrid     `yaml:"sendgrid"`
	Otel          Otel         `yaml:"otel"`
}

func MustLoad() *Config {

	var configPath string

	configPath = os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {

			log.Fatal("Config path is not set")

		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not load config: %s", err.Error())
	}

	return cfg

}

// LoadConfigFromPath reads the YAML file, applies environment overrides and
// checks the settings the storefront cannot start without.
func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {

	if strings.TrimSpace(c.Coinbase.APIKey) == "" {
		return errors.New("COINBASE_COMMERCE_API_KEY environment variable is not set")
	}

	switch c.Storage.Driver {
	case StorageDriverMemory, StorageDriverRedis:
	case StorageDriverPostgres:
		if c.Database.User == "" || c.Database.Name == "" {
			return errors.New("postgres storage requires PG_USER and PG_DBNAME")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Otel.SamplerRatio < 0 || c.Otel.SamplerRatio > 1 {
		return fmt.Errorf("otel sampler ratio must be within [0, 1], got %v", c.Otel.SamplerRatio)
	}

	return nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	if r.Username == "" && r.Password == "" {
		return fmt.Sprintf("redis://%s:%s/%d", r.Host, r.Port, r.DB)
	}

	return fmt.Sprintf("redis://%s:%s@%s:%s/%d", r.Username, r.Password, r.Host, r.Port, r.DB)
}

// SendGridEnabled reports whether order confirmation emails can be sent.
func (c *Config) SendGridEnabled() bool {
	return c.SendGrid.APIKey != ""
}
