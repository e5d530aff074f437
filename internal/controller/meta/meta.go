package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"webby.dev/backend/internal/pkg/bininfo"
	"webby.dev/backend/internal/server/svr"
	"webby.dev/backend/internal/service"
)

type Meta struct {
	fx.In

	HealthService *service.Health
}

type poolStats struct {
	Size  int64 `json:"size"`
	InUse int64 `json:"inUse"`
}

type healthResponse struct {
	Status string    `json:"status"`
	Pool   poolStats `json:"pool"`
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	// one store ping per second at most, whatever the probe rate
	meta.Get("/health", cache.New(cache.Config{
		Expiration: time.Second,
	}), c.Health)
}

func (c Meta) BinInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"name":    bininfo.Name,
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

// Health answers 503 through the error handler when the store cannot be pinged.
func (c Meta) Health(ctx *fiber.Ctx) error {
	if err := c.HealthService.Ping(ctx.UserContext()); err != nil {
		return err
	}

	pool := c.HealthService.Pool
	return ctx.JSON(healthResponse{
		Status: "ok",
		Pool: poolStats{
			Size:  pool.Size(),
			InUse: pool.InUse(),
		},
	})
}
