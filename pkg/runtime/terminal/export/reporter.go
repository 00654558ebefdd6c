package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
)

type TableConfig struct {
	KeyWidth   int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		KeyWidth:   28,
		ValueWidth: 16,
	}
}

// Reporter outputs consolidated reports to the console in a formatted text
// form.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.ConsolidatedReport) error {
	funcMap := template.FuncMap{
		"row": func(key string, value any) string {
			return fmt.Sprintf("| %-*s | %*v |",
				c.config.KeyWidth, key,
				c.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.KeyWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
		"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}

	tmpl := `
Consolidated Pipeline Report | week {{.Week}} ({{.Status}})
Generated: {{.GeneratedAt.Format "2006-01-02 15:04"}}  Run: {{.RunID}}
{{if eq .Status "no_data"}}
{{.Message}}
{{else if eq .Status "updates_only"}}
Updates received: {{.TotalUpdates}} (response rate {{.Response.RatePct}}%)
{{range .StatusTally}}
- {{.Status}}: {{.Count}}
{{end}}{{else}}
Offers: {{.TotalOffers}}  Updates: {{.TotalUpdates}}  Total value: {{money .TotalValue}}

=== Pipeline by phase ===
{{separator}}
{{range .PipelineByPhase}}{{row (printf "%s" .Category) .Count}}
{{end}}{{separator}}

=== Results ===
7d:  won {{.Results7d.Won.Count}} ({{money .Results7d.Won.Value}}) / lost {{.Results7d.Lost.Count}} ({{money .Results7d.Lost.Value}}) | win rate {{.Results7d.WinRatePct}}%
15d: won {{.Results15d.Won.Count}} ({{money .Results15d.Won.Value}}) / lost {{.Results15d.Lost.Count}} ({{money .Results15d.Lost.Value}}) | win rate {{.Results15d.WinRatePct}}%
30d: won {{.Results30d.Won.Count}} ({{money .Results30d.Won.Value}}) / lost {{.Results30d.Lost.Count}} ({{money .Results30d.Lost.Value}}) | win rate {{.Results30d.WinRatePct}}%

=== Top markets ===
{{separator}}
{{range .TopMarkets}}{{row .Key (money .Value)}}
{{end}}{{separator}}

=== Top owners by value ===
{{separator}}
{{range .TopOwnersByValue}}{{row .Key (money .Value)}}
{{end}}{{separator}}

=== Hour budget ===
Allocated: {{money .Budget.AllocatedHours}}  Consumed: {{money .Budget.ConsumedHours}}  Utilization: {{.Budget.UtilizationPct}}%{{if .Budget.Alert}}  [ALERT]{{end}}
{{range .Budget.AtRisk}}
- {{.Key}} ({{.Owner}}): {{.UtilizationPct}}%
{{end}}
=== Response rate ===
{{.Response.RatePct}}% ({{.Response.Responded}}/{{.Response.Total}}){{if .Response.Pending}}
Pending: {{range $i, $p := .Response.Pending}}{{if $i}}, {{end}}{{$p}}{{end}}{{end}}
{{end}}
`
	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
