package svr

import (
	"github.com/gofiber/fiber/v2"
)

// Web serves the html pages and fragments.
type Web struct {
	fiber.Router
}

// Meta serves operational endpoints.
type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*Web, *Meta) {
	web := app.Group("/")
	meta := app.Group("/api/_")

	return &Web{Router: web}, &Meta{Router: meta}
}
