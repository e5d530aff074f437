package app

import (
	"time"

	"go.uber.org/fx"

	"webby.dev/backend/internal/app/appconfig"
	"webby.dev/backend/internal/app/appcontext"
	"webby.dev/backend/internal/controller"
	"webby.dev/backend/internal/core/property"
	"webby.dev/backend/internal/infra"
	"webby.dev/backend/internal/pkg/logger"
	"webby.dev/backend/internal/server"
	"webby.dev/backend/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Servers
		server.Module(),

		// Domain
		property.Module(),

		// Services
		service.Module(),

		// Global Singleton Inits: keep those before controllers, since controllers
		// are fx#Invoke functions too and run in registration order.
		fx.Invoke(infra.SentryInit),

		// Controllers
		controller.Module(),

		// fx Extra Options
		fx.StartTimeout(10 * time.Second),
		// fiber's ShutdownWithTimeout bounds the graceful stop, this only
		// catches a server that never returns.
		fx.StopTimeout(conf.HTTPServerShutdownTimeout + 5*time.Second),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
