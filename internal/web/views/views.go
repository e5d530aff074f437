// Package views embeds the html templates rendered by the fiber view engine.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

const (
	LayoutMain = "layouts/main"

	Index        = "index"
	PartialList  = "partials/properties"
	PartialEdit  = "partials/edit"
	PartialError = "partials/error"
)

//go:embed layouts/*.html partials/*.html *.html
var fs embed.FS

// Engine returns a view engine over the embedded templates. reload re-reads them
// on every render and is only meant for development.
func Engine(reload bool) *html.Engine {
	engine := html.NewFileSystem(http.FS(fs), ".html")
	engine.Reload(reload)
	return engine
}
