// Package view renders the public landing page and serves its static assets.
package view

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// LandingPage renders the marketing page for content.
func LandingPage(content Landing) templ.Component {
	return page("landing.html", content)
}

// NotFoundPage renders the 404 page.
func NotFoundPage() templ.Component {
	return page("not_found.html", nil)
}

func page(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return pages.ExecuteTemplate(w, name, data)
	})
}

// StaticHandler serves the embedded CSS and JS under the given prefix, e.g. "/static/".
func StaticHandler(prefix string) http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix(prefix, http.FileServerFS(sub))
}
