package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/nettogo/internal/domain"
)

// HTMLFormatter produces a standalone HTML report
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"na": orNA,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results []domain.Result) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Rows        []Row
		Assumptions []string
	}{Rows(results), DefaultAssumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
