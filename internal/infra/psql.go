package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	"go.uber.org/fx"

	"webby.dev/backend/internal/app/appconfig"
	"webby.dev/backend/internal/pkg/dbpool"
)

func Postgres(conf *appconfig.Config, lc fx.Lifecycle) (*bun.DB, error) {
	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(conf.PostgresDSN)))
	pgdb.SetMaxOpenConns(conf.PostgresMaxOpenConns)
	pgdb.SetMaxIdleConns(conf.PostgresMaxIdleConns)
	pgdb.SetConnMaxLifetime(conf.PostgresConnMaxLifeTime)
	pgdb.SetConnMaxIdleTime(conf.PostgresConnMaxIdleTime)

	db := bun.NewDB(pgdb, pgdialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithVerbose(conf.BunDebugVerbose),
		bundebug.WithEnabled(conf.DevMode || conf.BunDebugVerbose),
	))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		// the page still renders and shows the failure inline, so a store that is
		// down at boot is not fatal
		log.Error().
			Err(err).
			Str("evt.name", "infra.postgres.ping.failed").
			Msg("infra: postgres: failed to ping database")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}

// Pool bounds concurrent checkout to the same size as the sql.DB connection limit.
func Pool(conf *appconfig.Config, db *bun.DB) *dbpool.Pool {
	return dbpool.New(db, conf.PostgresMaxOpenConns)
}
