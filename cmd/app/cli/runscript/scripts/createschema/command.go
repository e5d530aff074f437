package script_createschema

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"webby.dev/backend/internal/pkg/dbpool"
)

type CommandDeps struct {
	fx.In

	Pool *dbpool.Pool
}

func Command(depsFn func() (CommandDeps, error)) *cli.Command {
	return &cli.Command{
		Name:        "create-schema",
		Description: "create the properties table if it does not exist yet",
		Action: func(ctx *cli.Context) error {
			deps, err := depsFn()
			if err != nil {
				return err
			}
			return run(ctx.Context, deps)
		},
	}
}
