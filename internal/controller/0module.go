package controller

import (
	"go.uber.org/fx"

	controllermeta "webby.dev/backend/internal/controller/meta"
	controllerweb "webby.dev/backend/internal/controller/web"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (meta)
		controllermeta.Module(),

		// Controllers (web)
		controllerweb.Module(),
	)
}
