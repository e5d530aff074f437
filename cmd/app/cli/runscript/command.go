package runscript

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "webby.dev/backend/cmd/app/cli"
	script_createschema "webby.dev/backend/cmd/app/cli/runscript/scripts/createschema"
)

func depsFn[T any]() func() (T, error) {
	return func() (T, error) {
		var deps T
		err := cliapp.Start(fx.Populate(&deps))
		return deps, err
	}
}

func Command() *cli.Command {
	return &cli.Command{
		Name:        "run-script",
		Description: "run maintenance go scripts",
		Subcommands: []*cli.Command{
			script_createschema.Command(depsFn[script_createschema.CommandDeps]()),
		},
	}
}
