// Package database opens the configured relational store behind a GORM handle.
package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskboard-backend/internal/common/config"
	"taskboard-backend/internal/common/logger"
	"taskboard-backend/internal/domain/task"
	"taskboard-backend/internal/domain/user"
	"taskboard-backend/internal/platform/postgres"
	"taskboard-backend/internal/platform/sqlite"
)

// DB is the process-wide datastore handle. Open it once in main and Close it on shutdown.
type DB struct {
	*gorm.DB
	driver string
}

func Open(ctx context.Context, cfg *config.Config) (*DB, error) {
	gormLog := NewGormLogger(cfg.Debug)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		client, err := postgres.NewClient(cfg.Postgres, gormLog)
		if err != nil {
			return nil, err
		}
		return &DB{DB: client.Gorm(), driver: config.DriverPostgres}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Database.SQLitePath, gormLog)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("path", cfg.Database.SQLitePath).Msg("SQLite database opened")
		return &DB{DB: db, driver: config.DriverSQLite}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// Wrap adopts an already opened handle, e.g. an in-memory test database.
func Wrap(db *gorm.DB) *DB {
	return &DB{DB: db, driver: db.Dialector.Name()}
}

func (d *DB) Driver() string { return d.driver }

// Migrate creates or updates the users and tasks tables.
func (d *DB) Migrate(ctx context.Context) error {
	if err := d.WithContext(ctx).AutoMigrate(&user.User{}, &task.Task{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func (d *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *DB) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
