package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"webby.dev/backend/internal/constant"
	"webby.dev/backend/internal/pkg/flog"
)

// RequestID repopulates the request id injected by Logger into ctx.Locals.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := flog.IDFromFiberCtx(c)
		if ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
