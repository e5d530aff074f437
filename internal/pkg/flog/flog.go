// Package flog wires a per-request zerolog logger into fiber handlers.
package flog

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FromFiberCtx gets the logger in the request's context.
func FromFiberCtx(ctx *fiber.Ctx) *zerolog.Logger {
	return log.Ctx(ctx.UserContext())
}

// NewHandlerMiddleware injects a copy of l into every request context.
func NewHandlerMiddleware(l zerolog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// copy, so UpdateContext calls never race across requests
		rl := l.With().Logger()
		ctx.SetUserContext(rl.WithContext(ctx.UserContext()))
		return ctx.Next()
	}
}

// FieldHandler adds the value returned by fn as a string field of the request logger.
func FieldHandler(fieldKey string, fn func(ctx *fiber.Ctx) string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		v := fn(ctx)
		if v != "" {
			FromFiberCtx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str(fieldKey, v)
			})
		}
		return ctx.Next()
	}
}

func URLHandler(fieldKey string) fiber.Handler {
	return FieldHandler(fieldKey, func(ctx *fiber.Ctx) string { return ctx.Path() })
}

func MethodHandler(fieldKey string) fiber.Handler {
	return FieldHandler(fieldKey, func(ctx *fiber.Ctx) string { return ctx.Method() })
}

func RemoteAddrHandler(fieldKey string) fiber.Handler {
	return FieldHandler(fieldKey, func(ctx *fiber.Ctx) string { return ctx.IP() })
}

func UserAgentHandler(fieldKey string) fiber.Handler {
	return FieldHandler(fieldKey, func(ctx *fiber.Ctx) string { return ctx.Get(fiber.HeaderUserAgent) })
}

// CustomHeaderHandler adds the request header as a field to the request logger.
func CustomHeaderHandler(fieldKey, header string) fiber.Handler {
	return FieldHandler(fieldKey, func(ctx *fiber.Ctx) string { return ctx.Get(header) })
}

type idKey struct{}

// IDFromFiberCtx returns the unique id associated to the *fiber.Ctx if any.
func IDFromFiberCtx(ctx *fiber.Ctx) (id xid.ID, ok bool) {
	if ctx == nil {
		return
	}
	return IDFromCtx(ctx.UserContext())
}

// IDFromCtx returns the unique id associated to the context if any.
func IDFromCtx(ctx context.Context) (id xid.ID, ok bool) {
	id, ok = ctx.Value(idKey{}).(xid.ID)
	return
}

// CtxWithID adds the given xid.ID to the context
func CtxWithID(ctx context.Context, id xid.ID) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// RequestIDHandler assigns every request an xid, logs it under fieldKey and
// echoes it in headerName when that is not empty.
func RequestIDHandler(fieldKey, headerName string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, ok := IDFromFiberCtx(ctx)
		if !ok {
			id = xid.New()
			ctx.SetUserContext(CtxWithID(ctx.UserContext(), id))
		}
		if fieldKey != "" {
			FromFiberCtx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str(fieldKey, id.String())
			})
		}
		if headerName != "" {
			ctx.Set(headerName, id.String())
		}
		return ctx.Next()
	}
}

// AccessHandler returns a handler that call f after each request.
func AccessHandler(f func(ctx *fiber.Ctx, err error, duration time.Duration)) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		f(ctx, err, time.Since(start))
		return err
	}
}

func DebugFrom(ctx *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(ctx).Debug()
}

func InfoFrom(ctx *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(ctx).Info()
}

func WarnFrom(ctx *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(ctx).Warn()
}

func ErrorFrom(ctx *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(ctx).Error()
}
