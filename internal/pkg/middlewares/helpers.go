package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// use mounts handlers on r in order.
func use(r fiber.Router, handlers ...fiber.Handler) {
	for _, h := range handlers {
		r.Use(h)
	}
}
