package property

import (
	"context"

	"github.com/uptrace/bun"
)

func createTableQuery(db bun.IDB) *bun.CreateTableQuery {
	return db.NewCreateTable().
		Model((*Model)(nil)).
		IfNotExists()
}

// CreateSchema creates the properties table unless it already exists.
func CreateSchema(ctx context.Context, db bun.IDB) error {
	_, err := createTableQuery(db).Exec(ctx)
	return err
}
