// Package render renders the catalog's HTML pages for echo.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

// Page names accepted by Render.
const (
	ActorsIndex = "actors/index"
	ActorsShow  = "actors/show"
	MoviesIndex = "movies/index"
	MoviesShow  = "movies/show"
	Error       = "error"
)

// Renderer implements echo.Renderer. Each page is parsed together with the
// shared layout, so pages can define the same block names.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page template.
func New() (*Renderer, error) {
	r := &Renderer{pages: map[string]*template.Template{}}
	for _, name := range []string{ActorsIndex, ActorsShow, MoviesIndex, MoviesShow, Error} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes the named page inside the layout.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("render: unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
