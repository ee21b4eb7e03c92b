package testutil

import (
	"context"
	"strings"
	"testing"
	"unicode"

	gormlogger "gorm.io/gorm/logger"

	"taskboard-backend/internal/platform/database"
	"taskboard-backend/internal/platform/sqlite"
)

// OpenInMemoryDB opens a migrated in-memory SQLite database private to the test.
// The database is closed via t.Cleanup.
func OpenInMemoryDB(t *testing.T) *database.DB {
	t.Helper()

	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, t.Name())
	gdb, err := sqlite.Open(context.Background(), "file:"+name+"?mode=memory&cache=shared", gormlogger.Discard)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	db := database.Wrap(gdb)
	t.Cleanup(func() { _ = db.Close() })

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
