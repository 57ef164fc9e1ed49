package views

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/drover-cli/drover/internal/tui/styles"
	"github.com/drover-cli/drover/pkg/types"
)

// exportFile is where the summary view writes results on request.
const exportFile = "drover-results.json"

// SummaryModel is the view model for the end-of-batch summary.
type SummaryModel struct {
	results   []types.AccountResult
	cursor    int
	exported  bool
	exportErr string
}

// NewSummaryModel creates a summary view from batch results.
func NewSummaryModel(results []types.AccountResult) SummaryModel {
	return SummaryModel{results: results}
}

// Init returns nil (no initial command).
func (m SummaryModel) Init() tea.Cmd {
	return nil
}

// Update handles key events for scrolling and export.
func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
		case "e":
			m.exportJSON()
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the batch summary.
func (m SummaryModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Drover — Batch Summary"))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString("No accounts processed.\n")
	} else {
		for i, r := range m.results {
			cursor := "  "
			if i == m.cursor {
				cursor = styles.CursorStyle.Render("> ")
			}

			line := fmt.Sprintf("%s%s %s (exit %d, %d reports)",
				cursor,
				styles.StatusStyle(string(r.Status)).Render(string(r.Status)),
				r.AccountName, r.ExitCode, len(r.Reports))
			if r.Error != "" {
				line += " — " + styles.ErrorStyle.Render(r.Error)
			}
			b.WriteString(line + "\n")
		}

		b.WriteString("\n")
		b.WriteString(m.summaryLine())
		b.WriteString("\n")
	}

	if m.exported {
		b.WriteString(styles.HelpStyle.Render(fmt.Sprintf("exported to %s", exportFile)))
		b.WriteString("\n")
	}
	if m.exportErr != "" {
		b.WriteString(styles.ErrorStyle.Render(m.exportErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("↑/↓ navigate • e export json • q quit"))

	return b.String()
}

func (m SummaryModel) summaryLine() string {
	counts := make(map[types.ScanStatus]int)
	for _, r := range m.results {
		counts[r.Status]++
	}
	return fmt.Sprintf("%d accounts: %d passed, %d with findings, %d failed, %d skipped",
		len(m.results),
		counts[types.StatusPassed],
		counts[types.StatusFindings],
		counts[types.StatusFailed],
		counts[types.StatusSkipped],
	)
}

func (m *SummaryModel) exportJSON() {
	data, err := json.MarshalIndent(m.results, "", "  ")
	if err != nil {
		m.exportErr = err.Error()
		return
	}
	if err := os.WriteFile(exportFile, data, 0o644); err != nil {
		m.exportErr = err.Error()
		return
	}
	m.exported = true
	m.exportErr = ""
}
