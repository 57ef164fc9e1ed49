package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/drover-cli/drover/internal/tui/styles"
)

// RegionModel is the view model for confirming the AWS region to scan.
type RegionModel struct {
	textInput textinput.Model
	accounts  int
	err       string
}

// NewRegionModel creates a region input view prefilled with the region the
// command was launched with.
func NewRegionModel(region string, accounts int) RegionModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. us-east-1"
	ti.SetValue(region)
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 30
	ti.PromptStyle = styles.CursorStyle
	ti.TextStyle = styles.SelectedStyle

	return RegionModel{textInput: ti, accounts: accounts}
}

// Init returns the text input blink command.
func (m RegionModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input events.
func (m RegionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		if _, err := m.ValidatedRegion(); err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.err = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.err = ""
	return m, cmd
}

// View renders the region input form.
func (m RegionModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Drover — Interactive Mode"))
	b.WriteString("\n\n")
	b.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("Scanning %d accounts", m.accounts)))
	b.WriteString("\n")
	b.WriteString("AWS region to scan:\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.err))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("enter start batch • esc back"))

	return b.String()
}

// ValidatedRegion returns the region, or an error if it is unusable.
func (m RegionModel) ValidatedRegion() (string, error) {
	value := strings.TrimSpace(m.textInput.Value())
	if value == "" {
		return "", fmt.Errorf("region is required")
	}
	if strings.ContainsAny(value, " \t") {
		return "", fmt.Errorf("region cannot contain whitespace")
	}
	return value, nil
}
