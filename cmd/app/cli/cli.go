package cli

import (
	"context"

	"go.uber.org/fx"

	"webby.dev/backend/internal/app"
	"webby.dev/backend/internal/app/appcontext"
)

func Start(module fx.Option) error {
	return app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}
