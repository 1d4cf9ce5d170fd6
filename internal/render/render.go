// Package render turns a resume snapshot into HTML using one of the layout
// variants.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"github.com/pkg/errors"

	"resume-builder/internal/domain"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// Document is a rendered resume.
type Document struct {
	Template   domain.Template
	Name       string
	FontFamily string
	HTML       template.HTML
}

// Renderer is safe for concurrent use.
type Renderer struct {
	tpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tpl, err := template.New("resume").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "parse resume templates")
	}
	return &Renderer{tpl: tpl}, nil
}

// layoutName maps every template variant to its definition.
func layoutName(t domain.Template) (string, error) {
	switch t {
	case domain.TemplateModern:
		return "modern", nil
	case domain.TemplateClassic:
		return "classic", nil
	case domain.TemplateMinimal:
		return "minimal", nil
	}
	return "", errors.Wrapf(domain.ErrInvalidValue, "template %q", t)
}

// Render executes the layout selected by the document's customizations.
func (r *Renderer) Render(doc domain.Resume) (Document, error) {
	name, err := layoutName(doc.Customizations.Template)
	if err != nil {
		return Document{}, err
	}

	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, name, newView(doc)); err != nil {
		return Document{}, errors.Wrapf(err, "render %s", name)
	}
	return Document{
		Template:   doc.Customizations.Template,
		Name:       doc.Personal.Name,
		FontFamily: doc.Customizations.Font.Family(),
		HTML:       template.HTML(buf.String()),
	}, nil
}
