package rendering

import (
	"embed"
	"html/template"
	"strings"
	"sync"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/types"
)

//go:embed templates/print.html.tmpl
var templateFS embed.FS

const printTemplateName = "print.html.tmpl"

// PrintData is the data passed to the print template.
type PrintData struct {
	Subject  string
	Sections []types.Section
}

var printTemplate = sync.OnceValues(parsePrintTemplate)

// parsePrintTemplate parses the embedded print template
func parsePrintTemplate() (*template.Template, error) {
	tmpl, err := template.New(printTemplateName).ParseFS(templateFS, "templates/"+printTemplateName)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse print template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// RenderPrintHTML renders the print-ready document: one chip collection per
// non-empty section, in the same order as the text export. The document asks
// the host to print as soon as it loads and closes itself afterwards.
// All values are HTML-escaped.
func RenderPrintHTML(record types.ResumeRecord) (string, error) {
	tmpl, err := printTemplate()
	if err != nil {
		return "", err
	}

	data := PrintData{
		Subject:  record.Subject(),
		Sections: record.NonEmptySections(),
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute print template",
			Cause:   err,
		}
	}
	return result.String(), nil
}
