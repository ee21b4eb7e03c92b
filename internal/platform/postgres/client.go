package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskboard-backend/internal/common/config"
	"taskboard-backend/internal/common/logger"
)

// Client owns the lib/pq connection pool and the GORM handle built on top of it.
type Client struct {
	gorm *gorm.DB
}

func NewClient(cfg config.PostgresConfig, gormLog gormlogger.Interface) (*Client, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	gdb, err := gorm.Open(gormpg.New(gormpg.Config{Conn: db}), &gorm.Config{Logger: gormLog})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init gorm: %w", err)
	}

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("PostgreSQL client initialized")

	return &Client{gorm: gdb}, nil
}

// Gorm returns the ORM handle sharing the pool. Closing the handle's sql.DB closes the pool.
func (c *Client) Gorm() *gorm.DB {
	return c.gorm
}
