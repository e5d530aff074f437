package web

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/fx"

	"webby.dev/backend/internal/constant"
	"webby.dev/backend/internal/core/property"
	"webby.dev/backend/internal/pkg/cachectrl"
	"webby.dev/backend/internal/pkg/flog"
	"webby.dev/backend/internal/pkg/htmx"
	"webby.dev/backend/internal/pkg/weberr"
	"webby.dev/backend/internal/server/svr"
	"webby.dev/backend/internal/util/rekuest"
	"webby.dev/backend/internal/web/views"
)

const pageTitle = "Properties"

type Property struct {
	fx.In

	PropertyService *property.Service
}

func RegisterProperty(web *svr.Web, c Property) {
	web.Get("/", c.GetIndex)
	web.Post("/", c.CreateProperty)
	web.Get("/properties", c.GetPropertyList)

	web.Get("/property/:id/edit", c.GetPropertyEdit)
	web.Put("/property/:id", c.UpdateProperty)
	web.Delete("/property/:id", c.DeleteProperty)
	web.Post("/property/:id", c.OverrideMethod)
}

// listData lists the properties for rendering. A failed lookup is rendered
// inline as Error instead of failing the request.
func (c Property) listData(ctx *fiber.Ctx) fiber.Map {
	data := fiber.Map{"Title": pageTitle}

	properties, err := c.PropertyService.ListProperties(ctx.UserContext())
	if err != nil {
		flog.ErrorFrom(ctx).
			Err(err).
			Str("evt.name", "web.property.list.failed").
			Msg("failed to list properties")
		data["Error"] = weberr.Describe(err)
		return data
	}

	data["Properties"] = lo.Map(properties, toView)
	return data
}

func (c Property) renderPage(ctx *fiber.Ctx) error {
	cachectrl.OptOut(ctx)
	return ctx.Render(views.Index, c.listData(ctx), views.LayoutMain)
}

func (c Property) renderList(ctx *fiber.Ctx) error {
	cachectrl.OptOut(ctx)
	return ctx.Render(views.PartialList, c.listData(ctx))
}

func (c Property) GetIndex(ctx *fiber.Ctx) error {
	return c.renderPage(ctx)
}

func (c Property) GetPropertyList(ctx *fiber.Ctx) error {
	return c.renderList(ctx)
}

// CreateProperty answers htmx with 204 and a properties-changed trigger so that
// every bound list refreshes itself. A plain form post gets the page back.
func (c Property) CreateProperty(ctx *fiber.Ctx) error {
	var form PropertyForm
	if err := rekuest.ValidBody(ctx, &form); err != nil {
		return err
	}

	created, err := c.PropertyService.CreateProperty(ctx.UserContext(), form.Name)
	switch {
	case errors.Is(err, property.ErrEmptyName):
		flog.DebugFrom(ctx).
			Str("evt.name", "web.property.create.skipped").
			Msg("skipping property creation with empty name")
	case err != nil:
		return err
	default:
		flog.InfoFrom(ctx).
			Str("evt.name", "web.property.created").
			Int64("propertyId", created.ID).
			Msg("property created")
	}

	if htmx.IsRequest(ctx) {
		htmx.Trigger(ctx, constant.EventPropertiesChanged)
		return ctx.SendStatus(fiber.StatusNoContent)
	}
	return c.renderPage(ctx)
}

func (c Property) GetPropertyEdit(ctx *fiber.Ctx) error {
	id, err := rekuest.ParamID(ctx, "id")
	if err != nil {
		return err
	}

	p, err := c.PropertyService.GetProperty(ctx.UserContext(), id)
	if errors.Is(err, weberr.ErrNotFound) {
		return weberr.ErrNotFound.Msg("property %d not found", id)
	} else if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	return ctx.Render(views.PartialEdit, fiber.Map{
		"Property": toView(p, 0),
	})
}

func (c Property) UpdateProperty(ctx *fiber.Ctx) error {
	if err := c.update(ctx); err != nil {
		return err
	}
	return c.renderList(ctx)
}

func (c Property) DeleteProperty(ctx *fiber.Ctx) error {
	if err := c.delete(ctx); err != nil {
		return err
	}
	return c.renderList(ctx)
}

// OverrideMethod lets a form without javascript issue PUT and DELETE through
// POST with a _method field, then sends the browser back to the page.
func (c Property) OverrideMethod(ctx *fiber.Ctx) error {
	var err error
	switch method := strings.ToUpper(ctx.FormValue(constant.MethodOverrideField)); method {
	case fiber.MethodPut:
		err = c.update(ctx)
	case fiber.MethodDelete:
		err = c.delete(ctx)
	default:
		return weberr.ErrInvalidReq.Msg("invalid request: unsupported %s %q", constant.MethodOverrideField, method)
	}
	if err != nil {
		return err
	}
	return ctx.Redirect("/", fiber.StatusSeeOther)
}

func (c Property) update(ctx *fiber.Ctx) error {
	id, err := rekuest.ParamID(ctx, "id")
	if err != nil {
		return err
	}

	var form PropertyForm
	if err := rekuest.ValidBody(ctx, &form); err != nil {
		return err
	}

	err = c.PropertyService.UpdateProperty(ctx.UserContext(), id, form.Name)
	if errors.Is(err, property.ErrEmptyName) {
		flog.DebugFrom(ctx).
			Str("evt.name", "web.property.update.skipped").
			Int64("propertyId", id).
			Msg("skipping property update with empty name")
		return nil
	}
	return err
}

func (c Property) delete(ctx *fiber.Ctx) error {
	id, err := rekuest.ParamID(ctx, "id")
	if err != nil {
		return err
	}
	return c.PropertyService.DeleteProperty(ctx.UserContext(), id)
}
