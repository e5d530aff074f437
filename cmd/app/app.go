package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"webby.dev/backend/cmd/app/cli/runscript"
	"webby.dev/backend/cmd/app/server"
	"webby.dev/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        bininfo.Name,
		Description: "A small property registry served as htmx fragments. Built with Go, fiber, bun and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			runscript.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
