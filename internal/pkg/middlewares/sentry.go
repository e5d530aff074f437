package middlewares

import (
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"

	"webby.dev/backend/internal/constant"
	"webby.dev/backend/internal/pkg/htmx"
)

// EnrichSentry tags the request scoped sentry hub with the request id and htmx target.
func EnrichSentry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if hub := fibersentry.GetHubFromContext(c); hub != nil {
			if id, ok := c.Locals(constant.ContextKeyRequestID).(string); ok {
				hub.Scope().SetTag("request_id", id)
			}
			if target := c.Get(htmx.HeaderTarget); target != "" {
				hub.Scope().SetTag("hx_target", target)
			}
		}
		return c.Next()
	}
}
