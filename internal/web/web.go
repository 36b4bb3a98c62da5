// Package web renders the chat page and serves its static assets from the
// binary.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// PageData feeds templates/index.html.
type PageData struct {
	Title       string
	Theme       Theme
	ToggleLabel string
	CreditName  string
	CreditURL   string
	Stack       []string
	Cells       []int
}

type Renderer struct {
	index *template.Template
}

func NewRenderer() (*Renderer, error) {
	index, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	return &Renderer{index: index}, nil
}

// NewPageData fills the fixed copy of the page for the given theme.
func NewPageData(theme Theme) PageData {
	return PageData{
		Title:       "Boxy.ai Chat",
		Theme:       theme,
		ToggleLabel: theme.ToggleLabel(),
		CreditName:  "Ankur Sah",
		CreditURL:   "https://www.linkedin.com/in/ankur-kumar-sah-36b590322/",
		Stack: []string{
			"⚡ Go + chi",
			"🎨 Plain CSS with light and dark themes",
			"🧩 html/template, embedded in the binary",
			"🧠 Gemini API with conversation memory",
		},
		Cells: []int{0, 1, 2, 3, 4, 5, 6, 7, 8},
	}
}

func (r *Renderer) RenderIndex(w io.Writer, data PageData) error {
	return r.index.Execute(w, data)
}

// StaticHandler serves the files under static/ at the path it is mounted on.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
