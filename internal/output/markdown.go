package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/drover-cli/drover/pkg/types"
)

// MarkdownFormatter renders the batch summary as a Markdown table suitable
// for pasting into docs, issues, or pull-request descriptions.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Format(w io.Writer, results []types.AccountResult) error {
	fmt.Fprintln(w, "## Scan Batch Summary")
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "_No accounts processed._")
		return nil
	}

	fmt.Fprintln(w, "| Account | Region | Status | Exit | Reports | Notes |")
	fmt.Fprintln(w, "|---------|--------|--------|------|---------|-------|")

	for _, r := range results {
		fmt.Fprintf(w, "| %s | %s | **%s** | %d | %d | %s |\n",
			escapeMarkdown(r.AccountName),
			r.Region,
			r.Status,
			r.ExitCode,
			len(r.Reports),
			escapeMarkdown(r.Error),
		)
	}

	fmt.Fprintf(w, "\n**Summary:** %s\n", summaryLine(results))
	return nil
}

// escapeMarkdown escapes pipe characters that would break Markdown tables.
func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
