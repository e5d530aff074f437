package property

import (
	"context"

	"github.com/uptrace/bun"

	"webby.dev/backend/internal/pkg/dbpool"
	"webby.dev/backend/internal/repo/selector"
)

// Repo issues the five property statements. Each one checks out its own pool
// slot and commits on its own.
type Repo struct {
	pool *dbpool.Pool
	sel  selector.S[Model]
}

func NewRepo(pool *dbpool.Pool) *Repo {
	return &Repo{pool: pool, sel: selector.New[Model]()}
}

// ListProperties returns every property ordered by name, ties broken by id.
func (r *Repo) ListProperties(ctx context.Context) ([]*Model, error) {
	var properties []*Model
	err := r.pool.Do(ctx, OpList.String(), func(ctx context.Context, db bun.IDB) (err error) {
		properties, err = r.sel.SelectMany(ctx, db, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("name ASC", "id ASC")
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *Repo) CreateProperty(ctx context.Context, name string) (*Model, error) {
	property := &Model{Name: name}
	err := r.pool.Do(ctx, OpCreate.String(), func(ctx context.Context, db bun.IDB) error {
		_, err := db.NewInsert().
			Model(property).
			Returning("id").
			Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return property, nil
}

// DeleteProperty is a no-op when id does not exist.
func (r *Repo) DeleteProperty(ctx context.Context, id int64) error {
	return r.pool.Do(ctx, OpDelete.String(), func(ctx context.Context, db bun.IDB) error {
		_, err := db.NewDelete().
			Model((*Model)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		return err
	})
}

// UpdateProperty is a no-op when id does not exist.
func (r *Repo) UpdateProperty(ctx context.Context, id int64, name string) error {
	return r.pool.Do(ctx, OpUpdate.String(), func(ctx context.Context, db bun.IDB) error {
		_, err := db.NewUpdate().
			Model(&Model{ID: id, Name: name}).
			Column("name").
			WherePK().
			Exec(ctx)
		return err
	})
}

// GetProperty returns weberr.ErrNotFound when no row matches id.
func (r *Repo) GetProperty(ctx context.Context, id int64) (*Model, error) {
	var property *Model
	err := r.pool.Do(ctx, OpGet.String(), func(ctx context.Context, db bun.IDB) (err error) {
		property, err = r.sel.SelectOne(ctx, db, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("id = ?", id)
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return property, nil
}
