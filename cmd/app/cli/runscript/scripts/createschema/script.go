package script_createschema

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"webby.dev/backend/internal/core/property"
)

func run(ctx context.Context, deps CommandDeps) error {
	log.Info().Msg("running script")

	if err := deps.Pool.Do(ctx, "create_schema", property.CreateSchema); err != nil {
		return errors.Wrap(err, "failed to create properties table")
	}

	log.Info().Msg("script finished")

	return nil
}
