package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/drover-cli/drover/pkg/types"
)

// Options configures an interactive session.
type Options struct {
	Accounts []types.Account
	Region   string
	NewBatch BatchFactory
}

// Run starts the interactive TUI over the loaded accounts.
func Run(opts Options) error {
	if len(opts.Accounts) == 0 {
		return fmt.Errorf("no accounts to scan")
	}

	m := NewModel(opts.Accounts, opts.Region, opts.NewBatch)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
