// Package export produces the print-ready document and hands it to a print
// surface.
package export

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"

	"resume-builder/internal/render"
)

const (
	ProductName  = "ResumeCraft Pro"
	Attribution  = "Generated with ResumeCraft Pro • Professional Resume Builder"
	defaultTitle = "Resume"
)

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
      @import url('https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&display=swap');
      @import url('https://fonts.googleapis.com/css2?family=Roboto:wght@300;400;500;700&display=swap');
      @import url('https://fonts.googleapis.com/css2?family=Montserrat:wght@300;400;500;600;700&display=swap');
      @import url('https://fonts.googleapis.com/css2?family=Open+Sans:wght@300;400;500;600;700&display=swap');

      body {
        margin: 0;
        padding: 20mm;
        font-family: {{.FontFamily}};
        background: white;
        color: #1f2937;
      }
      * {
        -webkit-print-color-adjust: exact !important;
        color-adjust: exact !important;
        print-color-adjust: exact !important;
      }
      @page {
        margin: 0;
        size: A4;
      }
      @media print {
        body {
          padding: 0;
          margin: 0;
        }
      }
      .no-print { display: none; }
      .page-break { page-break-before: always; }
    </style>
  </head>
  <body>
    <div style="font-family: {{.FontFamily}}">
      {{.Body}}
    </div>
    <div class="no-print" style="margin-top: 40px; padding-top: 20px; border-top: 1px solid #e5e7eb; text-align: center; color: #6b7280; font-size: 12px;">
      {{.Attribution}}
    </div>
  </body>
</html>
`))

// Title is the print document title for a person's name.
func Title(name string) string {
	if name == "" {
		name = defaultTitle
	}
	return name + " - " + ProductName
}

// PrintDocument wraps rendered markup in a standalone page with fixed print
// styling and the attribution footer.
func PrintDocument(doc render.Document) (string, error) {
	var buf bytes.Buffer
	err := printTemplate.Execute(&buf, struct {
		Title       string
		FontFamily  template.CSS
		Body        template.HTML
		Attribution string
	}{
		Title:       Title(doc.Name),
		FontFamily:  template.CSS(doc.FontFamily),
		Body:        doc.HTML,
		Attribution: Attribution,
	})
	if err != nil {
		return "", errors.Wrap(err, "build print document")
	}
	return buf.String(), nil
}
