package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/pkordes/car-rental/web/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages maps a page file name to its template set (layout + page).
type pages map[string]*template.Template

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}

func mustParsePages() pages {
	out := pages{}
	for _, name := range []string{"home.html", "booking.html", "success.html"} {
		out[name] = template.Must(template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
	return out
}

// page holds what the layout needs on every page.
type page struct {
	Title   string
	Notices []domain.Notice
}

func (p *page) notify(n domain.Notice) {
	p.Notices = append(p.Notices, n)
}

// render executes the named page into a buffer first, so a template error
// becomes a clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		s.log.ErrorContext(r.Context(), "render page", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
