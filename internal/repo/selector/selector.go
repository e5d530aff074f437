package selector

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"webby.dev/backend/internal/pkg/weberr"
)

type S[T any] struct{}

func New[T any]() S[T] {
	return S[T]{}
}

func (S[T]) SelectOne(ctx context.Context, db bun.IDB, fn func(q *bun.SelectQuery) *bun.SelectQuery) (*T, error) {
	var model T
	err := fn(db.NewSelect().Model(&model)).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, weberr.ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return &model, nil
}

// SelectMany never reports not found: an empty result is an empty, non-nil slice.
func (S[T]) SelectMany(ctx context.Context, db bun.IDB, fn func(q *bun.SelectQuery) *bun.SelectQuery) ([]*T, error) {
	models := make([]*T, 0)
	err := fn(db.NewSelect().Model(&models)).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return models, nil
	} else if err != nil {
		return nil, err
	}

	return models, nil
}
