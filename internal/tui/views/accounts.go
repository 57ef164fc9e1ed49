package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/drover-cli/drover/internal/tui/styles"
	"github.com/drover-cli/drover/pkg/types"
)

// AccountsModel is the view model for the account multi-select list. All
// accounts start selected; the operator deselects the ones to skip.
type AccountsModel struct {
	accounts []types.Account
	selected map[int]bool
	cursor   int
}

// NewAccountsModel creates the selection list with every account selected.
func NewAccountsModel(accounts []types.Account) AccountsModel {
	selected := make(map[int]bool, len(accounts))
	for i := range accounts {
		selected[i] = true
	}
	return AccountsModel{accounts: accounts, selected: selected}
}

// Init returns nil (no initial command).
func (m AccountsModel) Init() tea.Cmd {
	return nil
}

// Update handles key navigation and selection toggling.
func (m AccountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.accounts)-1 {
				m.cursor++
			}
		case " ":
			m.selected[m.cursor] = !m.selected[m.cursor]
		case "a":
			all := !m.allSelected()
			for i := range m.accounts {
				m.selected[i] = all
			}
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the account selection list.
func (m AccountsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Drover — Interactive Mode"))
	b.WriteString("\n\n")
	b.WriteString(styles.HeaderStyle.Render("Select accounts to scan:"))
	b.WriteString("\n")

	for i, acct := range m.accounts {
		cursor := "  "
		nameStyle := styles.HelpStyle
		if i == m.cursor {
			cursor = styles.CursorStyle.Render("> ")
			nameStyle = styles.SelectedStyle
		}

		mark := "[ ]"
		if m.selected[i] {
			mark = "[x]"
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, nameStyle.Render(acct.Name)))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render(fmt.Sprintf("%d of %d selected", len(m.Selected()), len(m.accounts))))
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("↑/↓ navigate • space toggle • a toggle all • enter continue • q quit"))

	return b.String()
}

// Selected returns the selected accounts in list order.
func (m AccountsModel) Selected() []types.Account {
	var out []types.Account
	for i, acct := range m.accounts {
		if m.selected[i] {
			out = append(out, acct)
		}
	}
	return out
}

// Cursor returns the current cursor position.
func (m AccountsModel) Cursor() int {
	return m.cursor
}

func (m AccountsModel) allSelected() bool {
	for i := range m.accounts {
		if !m.selected[i] {
			return false
		}
	}
	return len(m.accounts) > 0
}
