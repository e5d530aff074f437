// Package dbpool bounds how many store statements may run at once.
//
// Every statement is checked out of the Pool for its duration. The pool is
// sized the same as database/sql's MaxOpenConns, so a checkout always maps
// to at most one open connection.
package dbpool

import (
	"context"
	"database/sql"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"golang.org/x/sync/semaphore"

	"webby.dev/backend/internal/pkg/observability"
	"webby.dev/backend/internal/pkg/weberr"
)

const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

type Pool struct {
	db    *bun.DB
	sem   *semaphore.Weighted
	size  int64
	inUse atomic.Int64
}

func New(db *bun.DB, size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{
		db:   db,
		sem:  semaphore.NewWeighted(int64(size)),
		size: int64(size),
	}
}

func (p *Pool) Size() int64 {
	return p.size
}

// InUse returns the number of slots currently checked out.
func (p *Pool) InUse() int64 {
	return p.inUse.Load()
}

// Do checks out one slot, runs fn and releases the slot.
//
// Errors that are already *weberr.Error pass through untouched; sql.ErrNoRows
// becomes weberr.ErrNotFound; anything else is reported as weberr.ErrStore.
func (p *Pool) Do(ctx context.Context, op string, fn func(ctx context.Context, db bun.IDB) error) error {
	waitStart := time.Now()
	if err := p.sem.Acquire(ctx, 1); err != nil {
		log.Warn().
			Err(err).
			Str("evt.name", "dbpool.acquire.failed").
			Str("op", op).
			Msg("gave up waiting for a store connection")
		return weberr.ErrStore.Wrap(errors.Wrapf(err, "dbpool: %s: acquire", op))
	}
	observability.PoolWaitDuration.WithLabelValues(op).Observe(time.Since(waitStart).Seconds())

	observability.PoolInUse.Set(float64(p.inUse.Add(1)))
	defer func() {
		observability.PoolInUse.Set(float64(p.inUse.Add(-1)))
		p.sem.Release(1)
	}()

	start := time.Now()
	err := fn(ctx, p.db)
	err = classify(op, err)
	observability.StatementDuration.WithLabelValues(op, outcome(err)).Observe(time.Since(start).Seconds())

	return err
}

// Ping checks the store is reachable using one slot.
func (p *Pool) Ping(ctx context.Context) error {
	return p.Do(ctx, "ping", func(ctx context.Context, _ bun.IDB) error {
		return p.db.PingContext(ctx)
	})
}

func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *weberr.Error
	if errors.As(err, &e) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return weberr.ErrNotFound
	}
	return weberr.ErrStore.Wrap(errors.Wrapf(err, "dbpool: %s", op))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, weberr.ErrNotFound):
		return outcomeNotFound
	default:
		return outcomeError
	}
}
