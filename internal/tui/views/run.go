package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/drover-cli/drover/internal/batch"
	"github.com/drover-cli/drover/internal/tui/styles"
	"github.com/drover-cli/drover/pkg/types"
)

// AccountDoneMsg is sent when one account's scan finishes.
type AccountDoneMsg struct {
	Index  int
	Result types.AccountResult
}

// BatchCompleteMsg is sent when every selected account has been processed.
type BatchCompleteMsg struct {
	Results []types.AccountResult
}

// RunModel is the view model for the batch progress view. It drives the
// batch one account at a time so each completion updates the screen; the
// accounts still run strictly sequentially.
type RunModel struct {
	spinner spinner.Model
	batch   *batch.Batch
	index   int
	results []types.AccountResult
}

// NewRunModel creates a batch progress view.
func NewRunModel(b *batch.Batch) RunModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.ColorAccent)

	return RunModel{spinner: sp, batch: b}
}

// Init starts the spinner and launches the first account's scan.
func (m RunModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runAccount(0))
}

// Update handles spinner ticks and per-account completions.
func (m RunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AccountDoneMsg:
		m.results = append(m.results, msg.Result)
		m.index = msg.Index + 1
		if m.index >= len(m.batch.Accounts) {
			results := m.results
			return m, func() tea.Msg { return BatchCompleteMsg{Results: results} }
		}
		return m, m.runAccount(m.index)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the batch progress.
func (m RunModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Drover — Batch Running"))
	b.WriteString("\n\n")

	for _, r := range m.results {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			styles.StatusStyle(string(r.Status)).Render(string(r.Status)),
			r.AccountName))
	}

	if m.index < len(m.batch.Accounts) {
		b.WriteString(fmt.Sprintf("%s scanning %s (%d/%d)\n",
			m.spinner.View(),
			styles.SelectedStyle.Render(m.batch.Accounts[m.index].Name),
			m.index+1, len(m.batch.Accounts)))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("ctrl+c quit"))

	return b.String()
}

// Results returns the results accumulated so far.
func (m RunModel) Results() []types.AccountResult {
	return m.results
}

func (m RunModel) runAccount(index int) tea.Cmd {
	b := m.batch
	return func() tea.Msg {
		result := b.RunAccount(context.Background(), index)
		return AccountDoneMsg{Index: index, Result: result}
	}
}
