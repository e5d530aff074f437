// Package cachectrl sets the HTTP caching headers of rendered responses.
package cachectrl

import (
	"github.com/gofiber/fiber/v2"
)

// OptOut marks the response as never cacheable. Fragments reflect the current
// store contents and go stale on the next mutation.
func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}
