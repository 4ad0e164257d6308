package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirepath/earnings-engine/internal/calculation"
	"github.com/hirepath/earnings-engine/internal/preset"
	"github.com/hirepath/earnings-engine/internal/refdata"
)

func testModel(t *testing.T) Model {
	t.Helper()
	ref, err := refdata.LoadDefault()
	require.NoError(t, err)
	return NewModel(calculation.NewEngine(ref))
}

func press(m Model, k string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	return next.(Model)
}

func TestNewModelComputesImmediately(t *testing.T) {
	m := testModel(t)
	require.NoError(t, m.err)
	require.NotNil(t, m.result)
	assert.Equal(t, preset.ToolWeeklyEarnings, m.result.ToolID)
	assert.True(t, m.result.GrossWeekly.IsPositive())
}

func TestCycleRoleRecomputes(t *testing.T) {
	m := testModel(t)
	before := m.result.RoleID

	m = press(m, "j") // focus role
	m = press(m, "l") // next role

	require.NoError(t, m.err)
	assert.NotEqual(t, before, m.result.RoleID)
}

func TestCycleToolResetsHours(t *testing.T) {
	m := testModel(t)
	m = press(m, "l") // tool focused by default; advance to next tool

	require.NoError(t, m.err)
	assert.Equal(t, m.tools[m.toolIdx].DefaultHours.String(), m.hours.String())
	assert.Equal(t, m.tools[m.toolIdx].ToolID, m.result.ToolID)
}

func TestCycleShiftChangesGross(t *testing.T) {
	m := testModel(t)
	require.Equal(t, "regular", m.shifts[m.shiftIdx].ID)
	before := m.result.GrossWeekly

	m.focus = fieldShift
	m = press(m, "l")

	require.NoError(t, m.err)
	assert.NotEqual(t, "regular", m.shifts[m.shiftIdx].ID)
	assert.False(t, m.result.GrossWeekly.Equal(before),
		"a non-regular shift should change gross pay")
}

func TestHoursClamp(t *testing.T) {
	m := testModel(t)
	m.focus = fieldHours
	for i := 0; i < 200; i++ {
		m = press(m, "l")
	}
	assert.True(t, m.hours.Equal(hoursMax))

	for i := 0; i < 200; i++ {
		m = press(m, "h")
	}
	assert.True(t, m.hours.Equal(hoursMin))
}

func TestViewRendersSelections(t *testing.T) {
	m := testModel(t)
	out := m.View()
	assert.Contains(t, out, "Earnings Calculator")
	assert.Contains(t, out, m.roles[m.roleIdx].Title)
	assert.Contains(t, out, m.cities[m.cityIdx].Name)
	assert.Contains(t, out, "Gross weekly")
}

func TestQuitKey(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
