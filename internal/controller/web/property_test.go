package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"webby.dev/backend/internal/app/appconfig"
	"webby.dev/backend/internal/constant"
	"webby.dev/backend/internal/controller"
	"webby.dev/backend/internal/core/property"
	"webby.dev/backend/internal/infra"
	"webby.dev/backend/internal/pkg/htmx"
	"webby.dev/backend/internal/pkg/testentry"
	"webby.dev/backend/internal/server"
	"webby.dev/backend/internal/service"
)

type env struct {
	app *fiber.App
	db  *bun.DB
}

func startup(t *testing.T) *env {
	t.Helper()

	conf := &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			ServiceAddress:            "localhost:0",
			TrustedProxies:            []string{"127.0.0.1"},
			PostgresMaxOpenConns:      4,
			HTTPServerShutdownTimeout: time.Second,
			HTTPReadTimeout:           5 * time.Second,
			HTTPWriteTimeout:          5 * time.Second,
		},
	}
	db := testentry.NewDB(t, testentry.PropertiesDDL)

	var app *fiber.App
	fxApp := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(conf, db),
		fx.Provide(infra.Pool),
		server.Module(),
		property.Module(),
		service.Module(),
		controller.Module(),
		fx.Populate(&app),
	)
	fxApp.RequireStart()
	t.Cleanup(fxApp.RequireStop)

	return &env{app: app, db: db}
}

func (e *env) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func formRequest(method, target string, values url.Values, hx bool) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	if hx {
		req.Header.Set(htmx.HeaderRequest, "true")
	}
	return req
}

func (e *env) create(t *testing.T, name string) {
	t.Helper()

	resp, _ := e.do(t, formRequest(http.MethodPost, "/", url.Values{"name": {name}}, true))
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func (e *env) list(t *testing.T) string {
	t.Helper()

	resp, body := e.do(t, httptest.NewRequest(http.MethodGet, "/properties", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return body
}

func TestIndexPage(t *testing.T) {
	e := startup(t)

	resp, body := e.do(t, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, `id="properties"`)
	assert.Contains(t, body, "No properties yet.")
	assert.NotEmpty(t, resp.Header.Get(constant.RequestIDHeader))
}

func TestCreateWithHtmxTriggersRefresh(t *testing.T) {
	e := startup(t)

	resp, body := e.do(t, formRequest(http.MethodPost, "/", url.Values{"name": {"Lakeview"}}, true))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, constant.EventPropertiesChanged, resp.Header.Get(htmx.HeaderTrigger))
	assert.Empty(t, body)

	resp, list := e.do(t, httptest.NewRequest(http.MethodGet, "/properties", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderCacheControl), "no-store")
	assert.Contains(t, list, "Lakeview")
	assert.NotContains(t, list, "<!DOCTYPE html>")
}

func TestCreateWithPlainFormRendersPage(t *testing.T) {
	e := startup(t)

	resp, body := e.do(t, formRequest(http.MethodPost, "/", url.Values{"name": {"Lakeview"}}, false))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(htmx.HeaderTrigger))
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "Lakeview")
}

func TestCreateWithEmptyNameIsSkipped(t *testing.T) {
	e := startup(t)

	e.create(t, "")
	e.create(t, "   ")

	assert.Contains(t, e.list(t), "No properties yet.")
}

func TestCreateWithOverlongNameIsRejected(t *testing.T) {
	e := startup(t)

	resp, _ := e.do(t, formRequest(http.MethodPost, "/", url.Values{"name": {strings.Repeat("a", 256)}}, true))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, e.list(t), "No properties yet.")
}

func TestListIsSortedByName(t *testing.T) {
	e := startup(t)

	e.create(t, "Lakeview")
	e.create(t, "Acorn")

	list := e.list(t)
	acorn := strings.Index(list, "Acorn")
	lakeview := strings.Index(list, "Lakeview")
	require.NotEqual(t, -1, acorn)
	require.NotEqual(t, -1, lakeview)
	assert.Less(t, acorn, lakeview)
}

func TestEditFragment(t *testing.T) {
	e := startup(t)
	e.create(t, "Lakeview")

	resp, body := e.do(t, httptest.NewRequest(http.MethodGet, "/property/1/edit", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `hx-put="/property/1"`)
	assert.Contains(t, body, `value="Lakeview"`)
	assert.NotContains(t, body, "<!DOCTYPE html>")
}

func TestEditFragmentNotFound(t *testing.T) {
	e := startup(t)

	req := httptest.NewRequest(http.MethodGet, "/property/999/edit", nil)
	req.Header.Set(htmx.HeaderRequest, "true")
	resp, body := e.do(t, req)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, `data-code="NOT_FOUND"`)
	assert.Contains(t, body, "property 999 not found")
}

func TestEditFragmentNotFoundAsJSON(t *testing.T) {
	e := startup(t)

	req := httptest.NewRequest(http.MethodGet, "/property/999/edit", nil)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	resp, body := e.do(t, req)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"code":"NOT_FOUND","message":"property 999 not found"}`, body)
}

func TestInvalidID(t *testing.T) {
	e := startup(t)

	resp, _ := e.do(t, httptest.NewRequest(http.MethodGet, "/property/abc/edit", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = e.do(t, httptest.NewRequest(http.MethodDelete, "/property/0", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateRendersList(t *testing.T) {
	e := startup(t)
	e.create(t, "Lakeview")

	resp, body := e.do(t, formRequest(http.MethodPut, "/property/1", url.Values{"name": {"Renamed"}}, true))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Renamed")
	assert.NotContains(t, body, "Lakeview")
}

func TestUpdateWithEmptyNameKeepsName(t *testing.T) {
	e := startup(t)
	e.create(t, "Lakeview")

	resp, body := e.do(t, formRequest(http.MethodPut, "/property/1", url.Values{"name": {""}}, true))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Lakeview")
}

func TestDeleteRendersList(t *testing.T) {
	e := startup(t)
	e.create(t, "Acorn")
	e.create(t, "Lakeview")

	resp, body := e.do(t, httptest.NewRequest(http.MethodDelete, "/property/2", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Acorn")
	assert.NotContains(t, body, "Lakeview")
}

func TestMutationsOnMissingID(t *testing.T) {
	e := startup(t)
	e.create(t, "Acorn")
	before := e.list(t)

	resp, body := e.do(t, httptest.NewRequest(http.MethodDelete, "/property/999", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, before, body)

	resp, body = e.do(t, formRequest(http.MethodPut, "/property/999", url.Values{"name": {"Ghost"}}, true))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, before, body)
}

func TestMethodOverride(t *testing.T) {
	e := startup(t)
	e.create(t, "Acorn")

	resp, _ := e.do(t, formRequest(http.MethodPost, "/property/1", url.Values{"_method": {"put"}, "name": {"Birch"}}, false))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
	assert.Contains(t, e.list(t), "Birch")

	resp, _ = e.do(t, formRequest(http.MethodPost, "/property/1", url.Values{"_method": {"DELETE"}}, false))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Contains(t, e.list(t), "No properties yet.")

	resp, _ = e.do(t, formRequest(http.MethodPost, "/property/1", url.Values{"_method": {"PATCH"}}, false))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStoreFailure(t *testing.T) {
	e := startup(t)
	e.create(t, "Acorn")
	require.NoError(t, e.db.Close())

	resp, body := e.do(t, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `class="error"`)
	assert.Contains(t, body, "store unavailable")

	resp, body = e.do(t, httptest.NewRequest(http.MethodGet, "/properties", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "store unavailable")

	resp, _ = e.do(t, httptest.NewRequest(http.MethodDelete, "/property/1", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	e := startup(t)

	resp, _ := e.do(t, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
