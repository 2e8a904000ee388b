package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/osse101/GrapeChallenge_Web/internal/growth"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded stylesheet tree rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var pages = []string{
	PageLogin,
	PageLogout,
	PageHome,
	PageHomeChristmas,
	PageGrove,
	PageDiary,
	PageDiaryChristmas,
	PageError,
}

// Renderer executes the page templates. It is safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page template on top of the shared layout
func NewRenderer() (*Renderer, error) {
	base, err := template.New("").Funcs(funcMap()).
		ParseFS(templateFS, "templates/layout.html", "templates/components.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page wrapped in the layout
func (r *Renderer) Render(w io.Writer, name string, page *Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	if err := t.ExecuteTemplate(w, "layout", page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"delay": func(seconds float64) template.CSS {
			return template.CSS(fmt.Sprintf("animation-delay: %.2fs", seconds))
		},
		"fadeInUp": func(seconds float64) template.CSS {
			return template.CSS(fmt.Sprintf("animation: fadeInUp 0.5s ease-out %.2fs forwards", seconds))
		},
		"ringOffset": func(offset float64) template.CSS {
			return template.CSS(fmt.Sprintf("stroke-dashoffset: %.2f", offset))
		},
		"isImageURL": growth.IsImageURL,
		"percent":    roundPercent,
		"image": func(src, alt, class string) Image {
			return Image{Src: src, Alt: alt, Class: class}
		},
		"withCSRF": func(csrf template.HTML, v any) Scoped {
			return Scoped{CSRF: csrf, V: v}
		},
	}
}

// Image is a fruit display value, an image URL or a text glyph
type Image struct {
	Src   string
	Alt   string
	Class string
}

// Scoped carries the CSRF field into nested templates
type Scoped struct {
	CSRF template.HTML
	V    any
}
