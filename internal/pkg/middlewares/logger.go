package middlewares

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"webby.dev/backend/internal/constant"
	"webby.dev/backend/internal/pkg/flog"
	"webby.dev/backend/internal/pkg/htmx"
	"webby.dev/backend/internal/pkg/weberr"
)

func Logger(r fiber.Router) {
	use(
		r,
		injectLogger(),
		flog.RequestIDHandler("request_id", constant.RequestIDHeader),
		flog.RemoteAddrHandler("ip"),
		flog.MethodHandler("method"),
		flog.URLHandler("url"),
		flog.UserAgentHandler("user_agent"),
		flog.CustomHeaderHandler("hx_target", htmx.HeaderTarget),
		requestLogger(),
	)
}

func injectLogger() fiber.Handler {
	return flog.NewHandlerMiddleware(log.With().Logger())
}

func requestLogger() fiber.Handler {
	return flog.AccessHandler(func(ctx *fiber.Ctx, err error, duration time.Duration) {
		status := ctx.Response().StatusCode()
		var (
			fe *fiber.Error
			we *weberr.Error
		)
		switch {
		case errors.As(err, &we):
			status = we.StatusCode
		case errors.As(err, &fe):
			status = fe.Code
		case err != nil:
			status = fiber.StatusInternalServerError
		}
		flog.FromFiberCtx(ctx).Info().
			Str("component", "httpreq").
			Int("status", status).
			Bool("htmx", htmx.IsRequest(ctx)).
			Int("size", len(ctx.Response().Body())).
			Dur("duration", duration).
			Msg("received request")
	})
}
