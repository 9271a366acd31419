// Package render turns page names plus data into HTML responses. Templates
// are embedded so the binary is self-contained.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/antonkh/thingboard/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Pages known to the renderer.
const (
	PageHome     = "home"
	PageAbout    = "about"
	PageThings   = "things"
	PageThing    = "thing"
	PageRegister = "register"
	PageLogin    = "login"
	PageNotFound = "notfound"
	PageError    = "error"
)

var pages = []string{
	PageHome, PageAbout, PageThings, PageThing,
	PageRegister, PageLogin, PageNotFound, PageError,
}

// Data is the named-value mapping handed to a template.
type Data map[string]any

// Renderer renders the application's HTML pages.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses the embedded templates. Every page is parsed together with the
// base layout, so a broken template fails at startup rather than per request.
func New() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))

	for _, page := range pages {
		tmpl, err := template.ParseFS(templatesFS, "templates/base.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %q: %w", page, err)
		}
		templates[page] = tmpl
	}

	return &Renderer{templates: templates}, nil
}

// Page renders a page with the given status code. The template executes into
// a buffer first so a render failure never produces a half-written page.
func (r *Renderer) Page(w http.ResponseWriter, status int, page string, data Data) {
	tmpl, ok := r.templates[page]
	if !ok {
		logger.Log.Errorw("unknown page", "page", page)
		r.ServerError(w, data)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		logger.Log.Errorw("failed to render page", "page", page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// NotFound renders the dedicated 404 page.
func (r *Renderer) NotFound(w http.ResponseWriter, data Data) {
	r.Page(w, http.StatusNotFound, PageNotFound, data)
}

// ServerError renders the dedicated 500 page.
func (r *Renderer) ServerError(w http.ResponseWriter, data Data) {
	tmpl, ok := r.templates[PageError]
	if !ok {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	buf.WriteTo(w)
}
