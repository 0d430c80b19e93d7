package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pageFiles maps a page name to the template file rendered inside the shared
// layout.
var pageFiles = map[string]string{
	"home":         "home.html",
	"login":        "login.html",
	"dashboard":    "dashboard.html",
	"invoices":     "invoices.html",
	"invoice_form": "invoice_form.html",
	"not_found":    "not_found.html",
}

// formatCents renders an integer amount of cents as a dollar string,
// e.g. 5437 becomes "$54.37".
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("$%s%d.%02d", sign, cents/100, cents%100)
}

// renderer holds one parsed template set per page, each combined with the
// shared layout.
type renderer struct {
	pages map[string]*template.Template
}

// newRenderer parses all embedded page templates. It fails if any template
// file is missing or malformed, so template errors surface at startup instead
// of on first render.
func newRenderer() (*renderer, error) {
	funcs := template.FuncMap{
		"cents": formatCents,
		"add":   func(a, b uint) uint { return a + b },
		"sub": func(a, b uint) uint {
			if b > a {
				return 0
			}

			return a - b
		},
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for name, file := range pageFiles {
		tpl, err := template.New("layout.html").Funcs(funcs).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+file)
		if err != nil {
			return nil, fmt.Errorf("could not parse template %q: %w", file, err)
		}
		pages[name] = tpl
	}

	return &renderer{pages: pages}, nil
}

// page renders the named page into a byte slice. Rendering to a buffer first
// means a template error never produces a half-written response body.
func (r *renderer) page(name string, data any) ([]byte, error) {
	tpl, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return nil, fmt.Errorf("could not render page %q: %w", name, err)
	}

	return buf.Bytes(), nil
}
