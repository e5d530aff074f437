// Package testentry builds throwaway stores for tests.
package testentry

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// PropertiesDDL mirrors the postgres properties table for sqlite.
const PropertiesDDL = `CREATE TABLE IF NOT EXISTS properties (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL
)`

// NewDB opens an in-memory sqlite database wrapped by bun and applies ddl.
// The database is closed when the test finishes.
func NewDB(t testing.TB, ddl ...string) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every connection to :memory: is its own database
	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(1)
	sqldb.SetConnMaxLifetime(0)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() {
		_ = db.Close()
	})

	for _, stmt := range ddl {
		_, err := db.ExecContext(context.Background(), stmt)
		require.NoError(t, err)
	}

	return db
}
