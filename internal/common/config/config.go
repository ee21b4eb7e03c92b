package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port         int           `env:"PORT" envDefault:"8080"`
		Origin       string        `env:"ORIGIN" envDefault:"http://localhost:3000"`
		ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
		WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	}

	Database struct {
		Driver      string `env:"DB_DRIVER" envDefault:"postgres"`
		SQLitePath  string `env:"SQLITE_PATH" envDefault:"taskboard.db"`
		AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`
	}

	Postgres PostgresConfig

	Redis struct {
		Enabled      bool          `env:"REDIS_ENABLED" envDefault:"false"`
		Host         string        `env:"REDIS_HOST" envDefault:"localhost"`
		Port         int           `env:"REDIS_PORT" envDefault:"6379"`
		Password     string        `env:"REDIS_PASSWORD" envDefault:""`
		DB           int           `env:"REDIS_DB" envDefault:"0"`
		UserCacheTTL time.Duration `env:"REDIS_USER_CACHE_TTL" envDefault:"30s"`
	}

	Ethereum struct {
		RPCURL         string        `env:"ETHEREUM_RPC_URL" envDefault:""`
		Network        string        `env:"ETHEREUM_NETWORK" envDefault:"ethereum"`
		BalanceTimeout time.Duration `env:"ETH_BALANCE_TIMEOUT" envDefault:"5s"`
	}

	AMQP struct {
		URL      string `env:"AMQP_URL" envDefault:""`
		Exchange string `env:"AMQP_EXCHANGE" envDefault:"taskboard.events"`
	}

	Tracing struct {
		OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
		Environment  string `env:"ENV" envDefault:"dev"`
	}

	Log struct {
		File       string `env:"LOG_FILE" envDefault:""`
		MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
		MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
		MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
	}
}

type PostgresConfig struct {
	Host            string        `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port            int           `env:"POSTGRES_PORT" envDefault:"5432"`
	User            string        `env:"POSTGRES_USER" envDefault:"postgres"`
	Password        string        `env:"POSTGRES_PASSWORD" envDefault:""`
	Database        string        `env:"POSTGRES_DB" envDefault:"taskboard"`
	SSLMode         string        `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"POSTGRES_CONN_MAX_LIFETIME" envDefault:"5m"`
}

// GetDSN builds a lib/pq keyword/value connection string.
func (p PostgresConfig) GetDSN() string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Database, p.SSLMode)
	if p.Password != "" {
		dsn += fmt.Sprintf(" password=%s", p.Password)
	}
	return dsn
}

// RedisAddr returns host:port of the cache.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	// .env is optional: in production variables are set directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q: expected %q or %q", cfg.Database.Driver, DriverPostgres, DriverSQLite)
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d", cfg.Server.Port)
	}

	return cfg, nil
}
