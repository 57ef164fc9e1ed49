package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/drover-cli/drover/pkg/types"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// timeRounding keeps durations readable in the terminal table.
const timeRounding = 100 * time.Millisecond

// TableFormatter renders the batch summary as a colored terminal table.
type TableFormatter struct{}

func (f *TableFormatter) Format(w io.Writer, results []types.AccountResult) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No accounts processed.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Account", "Region", "Status", "Exit", "Duration", "Reports"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator("│")

	for _, r := range results {
		table.Append([]string{
			r.AccountName,
			r.Region,
			colorStatus(r.Status),
			strconv.Itoa(r.ExitCode),
			r.Duration().Round(timeRounding).String(),
			strconv.Itoa(len(r.Reports)),
		})
	}

	table.Render()

	fmt.Fprintf(w, "  Summary: %s\n", summaryLine(results))

	// Failures get their error text spelled out after the table, worst
	// status first so hard failures are not buried under skips.
	failures := make([]types.AccountResult, 0, len(results))
	for _, r := range results {
		if r.Failed() && r.Error != "" {
			failures = append(failures, r)
		}
	}
	sort.SliceStable(failures, func(i, j int) bool {
		return types.StatusRank(failures[i].Status) < types.StatusRank(failures[j].Status)
	})
	for _, r := range failures {
		fmt.Fprintf(w, "  %s %s: %s\n", color.RedString("!"), r.AccountName, r.Error)
	}

	return nil
}

func colorStatus(s types.ScanStatus) string {
	switch s {
	case types.StatusPassed:
		return color.GreenString("PASSED")
	case types.StatusFindings:
		return color.YellowString("FINDINGS")
	case types.StatusFailed:
		return color.RedString("FAILED")
	case types.StatusSkipped:
		return color.YellowString("SKIPPED")
	default:
		return string(s)
	}
}
