package service

import (
	"context"

	"github.com/pkg/errors"

	"webby.dev/backend/internal/pkg/dbpool"
)

var ErrDatabaseNotReachable = errors.New("database not reachable")

type Health struct {
	Pool *dbpool.Pool
}

func NewHealth(pool *dbpool.Pool) *Health {
	return &Health{
		Pool: pool,
	}
}

// Ping checks the store through the pool, so a saturated pool also reports unhealthy
// once ctx expires.
func (s *Health) Ping(ctx context.Context) error {
	if err := s.Pool.Ping(ctx); err != nil {
		return errors.Wrap(err, ErrDatabaseNotReachable.Error())
	}
	return nil
}
