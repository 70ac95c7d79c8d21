package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/deposit-interest/internal/domain"
	"github.com/rpgo/deposit-interest/pkg/dateutil"
)

// HTMLFormatter produces the styled HTML report: summary table then per-tenant breakdowns.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":     FormatCurrency,
	"nullcurr": FormatNullCurrency,
	"rate":     FormatRate,
	"date":     dateutil.FormatDisplay,
	"period":   FormatPeriod,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Report
		Symbol      string
		AsOf        string
		Assumptions []string
	}{
		Report:      report,
		Symbol:      report.Currency,
		AsOf:        report.GeneratedAt.Format("02 January 2006"),
		Assumptions: GenerateAssumptions(report.Rates),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
