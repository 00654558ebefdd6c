// Package render produces the self-contained HTML status card embedded in
// the consolidation response, for posting into a chat channel.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
)

const cardTemplate = `<div style="font-family: 'Segoe UI', sans-serif; max-width: 700px; margin: 0 auto; border: 1px solid #ddd; border-radius: 12px; overflow: hidden;">
  <div style="background: #163829; color: #fff; padding: 20px 24px;">
    <h1 style="margin: 0; font-size: 20px;">Weekly Pipeline Report</h1>
    <p style="margin: 4px 0 0 0; font-size: 12px; opacity: .8;">Week {{.Week}} &bull; {{.GeneratedAt.Format "02/Jan/2006 15:04"}}</p>
    <div style="display: flex; gap: 16px; margin-top: 14px;">
      <div style="flex: 1; text-align: center;">
        <p style="margin: 0; font-size: 24px; font-weight: 700;">{{.TotalOffers}}</p>
        <p style="margin: 0; font-size: 11px; text-transform: uppercase;">Offers</p>
      </div>
      <div style="flex: 1; text-align: center;">
        <p style="margin: 0; font-size: 24px; font-weight: 700;">{{money .ActivePipeline.Value}}</p>
        <p style="margin: 0; font-size: 11px; text-transform: uppercase;">Pipeline Value</p>
      </div>
      <div style="flex: 1; text-align: center;">
        <p style="margin: 0; font-size: 24px; font-weight: 700;">{{.Results30d.WinRatePct}}%</p>
        <p style="margin: 0; font-size: 11px; text-transform: uppercase;">Win Rate 30d</p>
      </div>
    </div>
  </div>

  <div style="padding: 16px 24px;">
    <h2 style="margin: 0 0 8px 0; font-size: 14px;">Results (30 days)</h2>
    <p style="margin: 0; font-size: 13px; color: #2e7d32;">Won: {{.Results30d.Won.Count}} ({{money .Results30d.Won.Value}}, mean margin {{.Results30d.Won.MeanMarginPct}}%)</p>
    <p style="margin: 0; font-size: 13px; color: #c62828;">Lost: {{.Results30d.Lost.Count}} ({{money .Results30d.Lost.Value}}, mean margin {{.Results30d.Lost.MeanMarginPct}}%)</p>
  </div>

  <div style="padding: 16px 24px; background: #f8f9fa;">
    <h2 style="margin: 0 0 8px 0; font-size: 14px;">Hour Budget</h2>
    <p style="margin: 0; font-size: 13px;">Allocated {{hours .Budget.AllocatedHours}} &bull; Consumed {{hours .Budget.ConsumedHours}} &bull; Available {{hours .Budget.AvailableHours}}</p>
    <p style="margin: 4px 0 0 0; font-size: 13px; {{if .Budget.Alert}}color: #c62828; font-weight: 600;{{end}}">Utilization: {{.Budget.UtilizationPct}}%</p>
    {{if .Budget.AtRisk}}
    <table style="width: 100%; font-size: 12px; margin-top: 8px; border-collapse: collapse;">
      {{range .Budget.AtRisk}}<tr><td style="padding: 2px 6px;">{{.Key}}</td><td>{{.Owner}}</td><td style="text-align: right; color: #c62828;">{{.UtilizationPct}}%</td></tr>
      {{end}}
    </table>
    {{end}}
  </div>

  <div style="padding: 16px 24px;">
    <h2 style="margin: 0 0 8px 0; font-size: 14px;">Top Practices</h2>
    <table style="width: 100%; font-size: 12px; border-collapse: collapse;">
      {{range .Practices.Ranking}}<tr><td style="padding: 2px 6px;">{{.Practice}}</td><td style="text-align: right;">{{money .Value}}</td><td style="text-align: right; opacity: .7;">{{.Offers}} offers</td></tr>
      {{end}}
    </table>
  </div>

  <div style="padding: 16px 24px; background: {{if lt .Response.RatePct 80.0}}#ffebee{{else}}#e8f5e9{{end}};">
    <h2 style="margin: 0 0 8px 0; font-size: 14px;">Weekly Response Rate</h2>
    <p style="margin: 0; font-size: 13px;"><strong>{{.Response.RatePct}}%</strong> ({{.Response.Responded}} of {{.Response.Total}} owners)</p>
    {{if .Response.Pending}}<p style="margin: 6px 0 0 0; font-size: 12px; color: #c62828;">Pending: {{join .Response.Pending}}</p>{{end}}
  </div>
</div>`

// Card renders the success-shaped consolidated report as an HTML fragment.
// Reports without offer data have nothing to render and yield an empty
// string.
func Card(report *domain.ConsolidatedReport) (string, error) {
	if report == nil || report.Status != domain.ReportSuccess {
		return "", nil
	}

	funcMap := template.FuncMap{
		"money": formatMoney,
		"hours": func(h float64) string { return fmt.Sprintf("%.0fh", h) },
		"join":  func(items []string) string { return strings.Join(items, ", ") },
	}

	tmpl, err := template.New("card").Funcs(funcMap).Parse(cardTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse card template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, report); err != nil {
		return "", fmt.Errorf("failed to render card: %w", err)
	}
	return buf.String(), nil
}

// formatMoney renders a monetary amount with thousands separated by '.' and
// a ',' decimal comma, the convention of the report's audience.
func formatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	whole := fmt.Sprintf("%.2f", v)
	intPart := whole[:len(whole)-3]
	decPart := whole[len(whole)-2:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}
