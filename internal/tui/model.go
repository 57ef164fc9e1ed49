package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/drover-cli/drover/internal/batch"
	"github.com/drover-cli/drover/internal/tui/views"
	"github.com/drover-cli/drover/pkg/types"
)

// BatchFactory builds a ready-to-run batch for the operator's selection.
type BatchFactory func(selected []types.Account, region string) *batch.Batch

// appState represents which view is currently active.
type appState int

const (
	stateAccounts appState = iota // Account multi-select list
	stateRegion                   // Region confirmation input
	stateRun                      // Batch in progress
	stateSummary                  // End-of-batch summary
)

// Model is the root Bubble Tea model that manages view transitions.
type Model struct {
	state    appState
	newBatch BatchFactory
	width    int
	height   int

	// Sub-models for each view.
	accounts views.AccountsModel
	region   views.RegionModel
	run      views.RunModel
	summary  views.SummaryModel
}

// NewModel creates a root model over the loaded accounts.
func NewModel(accounts []types.Account, region string, newBatch BatchFactory) Model {
	return Model{
		state:    stateAccounts,
		newBatch: newBatch,
		accounts: views.NewAccountsModel(accounts),
		region:   views.NewRegionModel(region, len(accounts)),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return m.region.Init()
}

// Update handles messages and manages state transitions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m.handleBack()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	switch m.state {
	case stateAccounts:
		return m.updateAccounts(msg)
	case stateRegion:
		return m.updateRegion(msg)
	case stateRun:
		return m.updateRun(msg)
	case stateSummary:
		return m.updateSummary(msg)
	}

	return m, nil
}

// View renders the current view.
func (m Model) View() string {
	switch m.state {
	case stateAccounts:
		return m.accounts.View()
	case stateRegion:
		return m.region.View()
	case stateRun:
		return m.run.View()
	case stateSummary:
		return m.summary.View()
	}
	return ""
}

func (m Model) handleBack() (tea.Model, tea.Cmd) {
	// The run view cannot be backed out of: the current account's scan is
	// already underway.
	switch m.state {
	case stateRegion:
		m.state = stateAccounts
		return m, nil
	case stateSummary:
		m.state = stateAccounts
		return m, nil
	}
	return m, nil
}

func (m Model) updateAccounts(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		if len(m.accounts.Selected()) > 0 {
			m.state = stateRegion
			return m, m.region.Init()
		}
	}

	updated, cmd := m.accounts.Update(msg)
	m.accounts = updated.(views.AccountsModel)
	return m, cmd
}

func (m Model) updateRegion(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		region, err := m.region.ValidatedRegion()
		if err == nil {
			b := m.newBatch(m.accounts.Selected(), region)
			m.run = views.NewRunModel(b)
			m.state = stateRun
			return m, m.run.Init()
		}
	}

	updated, cmd := m.region.Update(msg)
	m.region = updated.(views.RegionModel)
	return m, cmd
}

func (m Model) updateRun(msg tea.Msg) (tea.Model, tea.Cmd) {
	if doneMsg, ok := msg.(views.BatchCompleteMsg); ok {
		m.summary = views.NewSummaryModel(doneMsg.Results)
		m.state = stateSummary
		return m, nil
	}

	updated, cmd := m.run.Update(msg)
	m.run = updated.(views.RunModel)
	return m, cmd
}

func (m Model) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.summary.Update(msg)
	m.summary = updated.(views.SummaryModel)
	return m, cmd
}
