package httpserver

import (
	"errors"
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"webby.dev/backend/internal/pkg/flog"
	"webby.dev/backend/internal/pkg/htmx"
	"webby.dev/backend/internal/pkg/weberr"
	"webby.dev/backend/internal/web/views"
)

// handleCustomError answers with an error fragment, or with a JSON body when the
// client prefers JSON.
func handleCustomError(ctx *fiber.Ctx, e *weberr.Error) error {
	ctx.Status(e.StatusCode)

	if ctx.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON {
		body := fiber.Map{
			"code":    e.ErrorCode,
			"message": e.Message,
		}
		if e.Extras != nil {
			for k, v := range *e.Extras {
				body[k] = v
			}
		}
		return ctx.JSON(body)
	}

	data := fiber.Map{
		"Title":   "Error",
		"Code":    e.ErrorCode,
		"Message": e.Message,
	}
	// a browser navigation gets a whole page, htmx swaps the bare fragment
	if ctx.Method() == fiber.MethodGet && !htmx.IsRequest(ctx) {
		return ctx.Render(views.PartialError, data, views.LayoutMain)
	}
	return ctx.Render(views.PartialError, data)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var e *weberr.Error
	if errors.As(err, &e) {
		if e.StatusCode >= fiber.StatusInternalServerError {
			report(ctx, err, e.StatusCode)
		} else {
			flog.WarnFrom(ctx).
				Err(err).
				Str("method", ctx.Method()).
				Str("path", ctx.Path()).
				Msg(e.Message)
		}
		return handleCustomError(ctx, e)
	}

	// Default 500 statuscode
	re := weberr.ErrInternalError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		// routing errors such as 404 and 405 are the client's
		re = weberr.New(fe.Code, "UNKNOWN_ERROR", fe.Message)
		if fe.Code < fiber.StatusInternalServerError {
			return handleCustomError(ctx, re)
		}
	}

	report(ctx, err, re.StatusCode)

	return handleCustomError(ctx, re)
}

func report(ctx *fiber.Ctx, err error, status int) {
	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", status).
		Msg("Internal Server Error")

	hub := fibersentry.GetHubFromContext(ctx)
	if hub == nil {
		return
	}
	hub.Scope().SetTag("status", strconv.Itoa(status))
	hub.CaptureException(err)
}
