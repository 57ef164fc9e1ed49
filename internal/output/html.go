package output

import (
	"fmt"
	"html/template"
	"io"

	"github.com/drover-cli/drover/pkg/types"
)

// HTMLFormatter renders the batch summary as a self-contained HTML report
// with styled status badges and per-account report-file listings.
type HTMLFormatter struct{}

func (f *HTMLFormatter) Format(w io.Writer, results []types.AccountResult) error {
	return htmlTpl.Execute(w, templateData{Results: results})
}

type templateData struct {
	Results []types.AccountResult
}

// statusClass maps a ScanStatus to a CSS class name.
func statusClass(s types.ScanStatus) string {
	switch s {
	case types.StatusPassed:
		return "passed"
	case types.StatusFindings:
		return "findings"
	case types.StatusFailed:
		return "failed"
	default:
		return "skipped"
	}
}

var funcMap = template.FuncMap{
	"statusClass": statusClass,
	"countStatus": func(results []types.AccountResult, s types.ScanStatus) int {
		n := 0
		for _, r := range results {
			if r.Status == s {
				n++
			}
		}
		return n
	},
	"statusPassed":   func() types.ScanStatus { return types.StatusPassed },
	"statusFindings": func() types.ScanStatus { return types.StatusFindings },
	"statusFailed":   func() types.ScanStatus { return types.StatusFailed },
	"statusSkipped":  func() types.ScanStatus { return types.StatusSkipped },
}

var htmlTpl = template.Must(template.New("report").Funcs(funcMap).Parse(fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Drover Batch Report</title>
<style>%s</style>
</head>
<body>
<div class="container">
  <h1>Drover Batch Report</h1>

  <div class="summary-bar">
    <span class="badge passed">{{countStatus .Results statusPassed}} Passed</span>
    <span class="badge findings">{{countStatus .Results statusFindings}} Findings</span>
    <span class="badge failed">{{countStatus .Results statusFailed}} Failed</span>
    <span class="badge skipped">{{countStatus .Results statusSkipped}} Skipped</span>
    <span class="total">{{len .Results}} accounts</span>
  </div>

  {{range .Results}}
  <section class="account-section">
    <h2>{{.AccountName}} &mdash; {{.Region}}</h2>
    <p>
      <span class="badge {{statusClass .Status}}">{{.Status}}</span>
      exit code {{.ExitCode}}
    </p>
    {{if .Error}}
      <div class="error-box">{{.Error}}</div>
    {{end}}
    {{if .Reports}}
      <table>
        <thead>
          <tr><th>Report File</th><th>Size</th></tr>
        </thead>
        <tbody>
          {{range .Reports}}
          <tr><td>{{.Path}}</td><td>{{.Size}} bytes</td></tr>
          {{end}}
        </tbody>
      </table>
    {{else}}
      <p class="no-reports">No report files collected.</p>
    {{end}}
  </section>
  {{end}}
</div>
</body>
</html>`, cssStyles)))

const cssStyles = `
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,Helvetica,Arial,sans-serif;
     line-height:1.6;color:#1a1a2e;background:#f5f5fa;padding:2rem}
.container{max-width:960px;margin:0 auto}
h1{margin-bottom:1rem;font-size:1.8rem}
h2{margin:1.5rem 0 .75rem;font-size:1.3rem;border-bottom:2px solid #e0e0e0;padding-bottom:.3rem}
.summary-bar{display:flex;gap:.5rem;flex-wrap:wrap;align-items:center;margin-bottom:1.5rem}
.total{margin-left:.5rem;font-weight:600}
.badge{display:inline-block;padding:2px 10px;border-radius:12px;font-size:.8rem;font-weight:700;color:#fff;text-transform:uppercase}
.badge.passed{background:#2e7d32}
.badge.findings{background:#f9a825;color:#333}
.badge.failed{background:#d32f2f}
.badge.skipped{background:#757575}
table{width:100%;border-collapse:collapse;margin-bottom:1rem}
th,td{text-align:left;padding:.5rem .75rem;border-bottom:1px solid #e0e0e0}
th{background:#eaeaea;font-weight:600}
tr:hover{background:#f0f0ff}
.error-box{background:#ffebee;color:#c62828;padding:.75rem 1rem;border-radius:6px;margin-bottom:1rem}
.no-reports{color:#666;font-style:italic}
.account-section{margin-bottom:2rem}
`
