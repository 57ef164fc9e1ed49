package views

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/drover-cli/drover/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryResults() []types.AccountResult {
	return []types.AccountResult{
		{AccountName: "prod", Region: "us-east-1", Status: types.StatusPassed, ExitCode: 0},
		{AccountName: "staging", Region: "us-east-1", Status: types.StatusFindings, ExitCode: 3},
		{AccountName: "dev", Region: "us-east-1", Status: types.StatusFailed, ExitCode: 1, Error: "prowler exited with code 1"},
	}
}

func TestSummaryModelViewListsEveryAccount(t *testing.T) {
	m := NewSummaryModel(summaryResults())
	view := m.View()

	assert.Contains(t, view, "prod")
	assert.Contains(t, view, "staging")
	assert.Contains(t, view, "dev")
	assert.Contains(t, view, "3 accounts: 1 passed, 1 with findings, 1 failed, 0 skipped")
}

func TestSummaryModelViewShowsErrors(t *testing.T) {
	m := NewSummaryModel(summaryResults())
	assert.Contains(t, m.View(), "prowler exited with code 1")
}

func TestSummaryModelEmptyResults(t *testing.T) {
	m := NewSummaryModel(nil)
	assert.Contains(t, m.View(), "No accounts processed")
}

func TestSummaryModelCursorBounds(t *testing.T) {
	m := NewSummaryModel(summaryResults())

	updated, _ := m.Update(keyRunes("k"))
	m = updated.(SummaryModel)
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 5; i++ {
		updated, _ = m.Update(keyRunes("j"))
		m = updated.(SummaryModel)
	}
	assert.Equal(t, 2, m.cursor)
}

func TestSummaryModelExportWritesJSON(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	m := NewSummaryModel(summaryResults())
	updated, _ := m.Update(keyRunes("e"))
	m = updated.(SummaryModel)

	assert.Contains(t, m.View(), "exported to drover-results.json")

	data, err := os.ReadFile(filepath.Join(dir, "drover-results.json"))
	require.NoError(t, err)

	var results []types.AccountResult
	require.NoError(t, json.Unmarshal(data, &results))
	assert.Len(t, results, 3)
	assert.Equal(t, "prod", results[0].AccountName)
}

func TestSummaryModelQQuits(t *testing.T) {
	m := NewSummaryModel(summaryResults())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.NotNil(t, cmd)
}
