package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestRegionModelPrefilledRegionIsValid(t *testing.T) {
	m := NewRegionModel("us-east-1", 2)

	region, err := m.ValidatedRegion()
	assert.NoError(t, err)
	assert.Equal(t, "us-east-1", region)
}

func TestRegionModelEmptyRegionIsRejected(t *testing.T) {
	m := NewRegionModel("", 2)

	_, err := m.ValidatedRegion()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestRegionModelWhitespaceOnlyIsRejected(t *testing.T) {
	m := NewRegionModel("   ", 2)

	_, err := m.ValidatedRegion()
	assert.Error(t, err)
}

func TestRegionModelEmbeddedWhitespaceIsRejected(t *testing.T) {
	m := NewRegionModel("us east 1", 2)

	_, err := m.ValidatedRegion()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "whitespace")
}

func TestRegionModelTrimsSurroundingSpace(t *testing.T) {
	m := NewRegionModel("  eu-west-1  ", 2)

	region, err := m.ValidatedRegion()
	assert.NoError(t, err)
	assert.Equal(t, "eu-west-1", region)
}

func TestRegionModelEnterWithBadRegionShowsError(t *testing.T) {
	m := NewRegionModel("", 2)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(RegionModel)
	assert.Contains(t, m.View(), "region is required")
}

func TestRegionModelViewShowsAccountCount(t *testing.T) {
	m := NewRegionModel("us-east-1", 4)
	assert.Contains(t, m.View(), "Scanning 4 accounts")
}
