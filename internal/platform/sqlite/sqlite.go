package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/mattn/go-sqlite3"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// driverName is go-sqlite3 with a Unicode aware lower() installed on every connection.
const driverName = "sqlite3_taskboard"

var registerOnce sync.Once

func registerDriver() {
	registerOnce.Do(func() {
		sql.Register(driverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("lower", lower, true)
			},
		})
	})
}

// lower replaces the builtin, which only folds ASCII. NULL stays NULL.
func lower(v any) any {
	switch s := v.(type) {
	case string:
		return strings.ToLower(s)
	case []byte:
		if s == nil {
			return nil
		}
		return strings.ToLower(string(s))
	default:
		return v
	}
}

// Open opens (or creates) a SQLite database through mattn/go-sqlite3.
// path may be a file name or a "file:" URI such as "file:x?mode=memory&cache=shared".
func Open(ctx context.Context, path string, gormLog gormlogger.Interface) (*gorm.DB, error) {
	if path == "" {
		path = "taskboard.db"
	}

	registerDriver()
	dialector := gormsqlite.New(gormsqlite.Config{DriverName: driverName, DSN: withPragmas(path)})
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// one writer at a time; also keeps shared-cache memory databases alive
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	// journal_mode is not supported for in-memory databases
	_ = db.WithContext(ctx).Exec(`PRAGMA journal_mode=WAL`).Error
	if err := db.WithContext(ctx).Exec(`PRAGMA foreign_keys=ON`).Error; err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

func withPragmas(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=1&_busy_timeout=5000"
}
