package property

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

func TestCreateTableQueryForPostgres(t *testing.T) {
	// formatting a query never dials the server
	db := bun.NewDB(sql.OpenDB(pgdriver.NewConnector()), pgdialect.New())
	t.Cleanup(func() { _ = db.Close() })

	b, err := createTableQuery(db).AppendQuery(db.Formatter(), nil)
	require.NoError(t, err)
	query := string(b)

	assert.Contains(t, query, `CREATE TABLE IF NOT EXISTS "properties"`)
	assert.Contains(t, query, `"id" BIGSERIAL NOT NULL`)
	assert.Contains(t, query, `"name" VARCHAR NOT NULL`)
	assert.Contains(t, query, `PRIMARY KEY ("id")`)
}
