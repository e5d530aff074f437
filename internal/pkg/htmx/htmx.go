// Package htmx holds the request and response headers exchanged with an htmx client.
package htmx

import "github.com/gofiber/fiber/v2"

const (
	HeaderRequest = "HX-Request"
	HeaderTarget  = "HX-Target"
	HeaderTrigger = "HX-Trigger"
)

// IsRequest reports whether the request was issued by htmx rather than a plain browser navigation.
func IsRequest(ctx *fiber.Ctx) bool {
	return ctx.Get(HeaderRequest) == "true"
}

// Trigger asks the client to dispatch event on the document body once the response is swapped.
func Trigger(ctx *fiber.Ctx, event string) {
	ctx.Set(HeaderTrigger, event)
}
