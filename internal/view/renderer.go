package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/netoar/fyyur/internal/dto"
)

//go:embed templates
var files embed.FS

const (
	layoutName  = "layout.html"
	sharedFiles = "templates/*.html"
	pageFiles   = "templates/*/*.html"
)

// Page is the root value every template executes against.
type Page struct {
	Messages []string
	Data     any
}

// Renderer implements echo.Renderer. Each page is parsed together with the
// layout and the shared form fields, and is addressed by its path under
// templates/, e.g. "pages/home.html".
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"datetime": Datetime,
		"join":     strings.Join,
		"genres":   func() []string { return Genres },
		"states":   func() []string { return States },
		"selected": selected,
	}

	layout, err := template.New(layoutName).Funcs(funcs).ParseFS(files, sharedFiles)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	names, err := fs.Glob(files, pageFiles)
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		t, err := template.Must(layout.Clone()).ParseFS(files, name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[strings.TrimPrefix(name, "templates/")] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	page, ok := data.(Page)
	if !ok {
		page = Page{Data: data}
	}
	return t.ExecuteTemplate(w, layoutName, page)
}

const (
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
)

// Datetime formats a show start time for display. format is "full" or
// "medium" (the default). Values that do not parse are returned as is.
func Datetime(value any, format ...string) string {
	var t time.Time
	switch v := value.(type) {
	case time.Time:
		t = v
	case string:
		parsed, err := time.Parse(dto.StartTimeLayout, v)
		if err != nil {
			if parsed, err = time.Parse(time.RFC3339Nano, v); err != nil {
				return v
			}
		}
		t = parsed
	default:
		return fmt.Sprint(value)
	}

	if len(format) > 0 && format[0] == "full" {
		return t.Format(fullLayout)
	}
	return t.Format(mediumLayout)
}
