package http

import (
	"embed"
	"html/template"
	"io"

	"github.com/fwojciec/pagescrape"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names.
const (
	pageHome   = "home.html"
	pageResult = "result.html"
	pageBatch  = "batch.html"
	pageError  = "error.html"
)

var funcs = template.FuncMap{
	"preview": func(s string) string {
		return pagescrape.Truncate(s, pagescrape.PreviewLimit)
	},
	"summary": pagescrape.BatchSummary,
}

// Templates holds one parsed template set per page, each combined with the
// shared base layout.
type Templates struct {
	pages map[string]*template.Template
}

// ParseTemplates parses every page template together with the base layout.
func ParseTemplates() (*Templates, error) {
	t := &Templates{pages: make(map[string]*template.Template)}
	for _, name := range []string{pageHome, pageResult, pageBatch, pageError} {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, err
		}
		t.pages[name] = tmpl
	}
	return t, nil
}

// Render executes the named page with data.
func (t *Templates) Render(w io.Writer, name string, data any) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return pagescrape.Errorf(pagescrape.EINTERNAL, "unknown page %q", name)
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}

type homeData struct {
	File string
}

type errorData struct {
	URL     string
	Message string
}
