package property

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("property",
		fx.Provide(
			NewRepo,
			NewService,
		),
	)
}
