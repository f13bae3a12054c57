// Package web serves the candidate-facing HTML pages: the part list, one
// page per part with the answer form, and the submission confirmation.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/heartmarshall/eulerq-candidate-test/internal/domain"
)

type questionSource interface {
	Get(part domain.Part) (domain.Question, bool)
	All() []domain.Question
}

// RendererConfig holds the candidate-facing presentation settings.
type RendererConfig struct {
	Title         string
	AutosaveEvery time.Duration
}

// Page is a fully rendered HTML response.
type Page struct {
	Status int
	Body   []byte
}

// Write sends the page as an HTML response.
func (p *Page) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(p.Status)
	w.Write(p.Body) //nolint:errcheck
}

// pageData is the single view model shared by all templates.
type pageData struct {
	Title         string
	CandidateName string
	Parts         []domain.Question

	Question   domain.Question
	AutosaveMs int64

	Receipt *domain.Receipt

	StatusText string
	Messages   []string
	BackTo     string
}

// Renderer renders pages from the embedded templates. Question text always
// comes from the question bank.
type Renderer struct {
	bank  questionSource
	cfg   RendererConfig
	pages map[string]*template.Template
}

var pageNames = []string{"home", "part", "submitted", "error"}

var funcs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04:05 UTC")
	},
}

// NewRenderer parses all page templates.
func NewRenderer(bank questionSource, cfg RendererConfig) (*Renderer, error) {
	r := &Renderer{
		bank:  bank,
		cfg:   cfg,
		pages: make(map[string]*template.Template, len(pageNames)),
	}

	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}

	return r, nil
}

// RenderHome renders the part list with the candidate name form.
func (r *Renderer) RenderHome(candidateName string) (*Page, error) {
	return r.render("home", http.StatusOK, r.base(candidateName))
}

// RenderPart renders the question and answer form for part. The id is
// matched case-insensitively; unknown parts yield domain.ErrNotFound.
func (r *Renderer) RenderPart(id, candidateName string) (*Page, error) {
	part, ok := domain.ParsePart(id)
	if !ok {
		return nil, fmt.Errorf("part %q: %w", id, domain.ErrNotFound)
	}
	q, ok := r.bank.Get(part)
	if !ok {
		return nil, fmt.Errorf("question for part %s: %w", part, domain.ErrNotFound)
	}

	data := r.base(candidateName)
	data.Question = q
	data.AutosaveMs = r.cfg.AutosaveEvery.Milliseconds()
	return r.render("part", http.StatusOK, data)
}

// RenderSubmitted renders the confirmation for a stored answer. The page
// tells the browser to drop its local draft of that part.
func (r *Renderer) RenderSubmitted(receipt *domain.Receipt) (*Page, error) {
	data := r.base(receipt.CandidateName)
	data.Receipt = receipt
	return r.render("submitted", http.StatusOK, data)
}

// RenderError renders a human-readable error page. backTo, when set, links
// the candidate back to the form they came from. It never fails: if the
// template cannot be executed a plain page is returned.
func (r *Renderer) RenderError(status int, messages []string, backTo string) *Page {
	data := r.base("")
	data.StatusText = http.StatusText(status)
	data.Messages = messages
	data.BackTo = backTo

	page, err := r.render("error", status, data)
	if err != nil {
		var buf bytes.Buffer
		template.HTMLEscape(&buf, []byte(data.StatusText))
		return &Page{Status: status, Body: buf.Bytes()}
	}
	return page
}

func (r *Renderer) base(candidateName string) pageData {
	return pageData{
		Title:         r.cfg.Title,
		CandidateName: candidateName,
		Parts:         r.bank.All(),
	}
}

func (r *Renderer) render(name string, status int, data pageData) (*Page, error) {
	t, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return &Page{Status: status, Body: buf.Bytes()}, nil
}
