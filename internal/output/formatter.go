package output

import (
	"fmt"
	"io"

	"github.com/drover-cli/drover/pkg/types"
)

// Formatter renders a batch summary to a writer.
type Formatter interface {
	Format(w io.Writer, results []types.AccountResult) error
}

// GetFormatter returns the appropriate formatter for the given format string.
func GetFormatter(format string) (Formatter, error) {
	switch format {
	case "table":
		return &TableFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "markdown":
		return &MarkdownFormatter{}, nil
	case "html":
		return &HTMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: table, json, markdown, html)", format)
	}
}

func countStatuses(results []types.AccountResult) map[types.ScanStatus]int {
	counts := make(map[types.ScanStatus]int)
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}

func summaryLine(results []types.AccountResult) string {
	counts := countStatuses(results)
	return fmt.Sprintf("%d accounts (%d passed, %d with findings, %d failed, %d skipped)",
		len(results),
		counts[types.StatusPassed],
		counts[types.StatusFindings],
		counts[types.StatusFailed],
		counts[types.StatusSkipped],
	)
}
