package templates

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/drover-cli/drover/pkg/types"
)

//go:embed *.html
var templateFS embed.FS

// pages holds a per-page template set, each cloned from the base layout.
var pages map[string]*template.Template

func init() {
	funcMap := template.FuncMap{
		"statusColor":    statusColor,
		"statusClass":    statusClass,
		"truncateID":     truncateID,
		"formatDuration": formatDuration,
		"formatTime":     formatTime,
		"countStatus":    countStatus,
		"progressPct":    progressPct,
		"lower":          strings.ToLower,
	}

	// Parse the base layout first.
	base := template.Must(template.New("").Funcs(funcMap).ParseFS(templateFS, "base.html"))

	// Each page template clones the base and adds its own content block.
	pageNames := []string{"index.html", "batches.html", "batch_detail.html", "not_found.html"}
	pages = make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		clone := template.Must(base.Clone())
		pages[name] = template.Must(clone.ParseFS(templateFS, name))
	}
}

// RenderPage executes the named page template into the response writer.
func RenderPage(w http.ResponseWriter, name string, data interface{}) error {
	tmpl, ok := pages[name]
	if !ok {
		return fmt.Errorf("render template %q: template not found", name)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("render template %q: %w", name, err)
	}
	return nil
}

// statusColor returns a CSS color for the given scan status.
func statusColor(s types.ScanStatus) string {
	switch s {
	case types.StatusPassed:
		return "#16a34a"
	case types.StatusFindings:
		return "#ca8a04"
	case types.StatusFailed:
		return "#dc2626"
	case types.StatusSkipped:
		return "#6b7280"
	default:
		return "#6b7280"
	}
}

// statusClass returns a CSS class name for the given scan status.
func statusClass(s types.ScanStatus) string {
	switch s {
	case types.StatusPassed:
		return "passed"
	case types.StatusFindings:
		return "findings"
	case types.StatusFailed:
		return "failed"
	case types.StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// truncateID shortens a job ID for display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Second).String()
}

// formatTime formats a time for display.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}

// countStatus counts results with the given status.
func countStatus(results []types.AccountResult, status string) int {
	n := 0
	for _, r := range results {
		if string(r.Status) == status {
			n++
		}
	}
	return n
}

// progressPct calculates a progress percentage from completed and total.
func progressPct(completed, total int) int {
	if total == 0 {
		return 0
	}
	return (completed * 100) / total
}
