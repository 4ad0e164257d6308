// Package tui is an interactive terminal calculator over the earnings
// engine: cycle role, city and tool, adjust hours, and watch the
// projection recompute live.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/hirepath/earnings-engine/internal/calculation"
	"github.com/hirepath/earnings-engine/internal/domain"
	"github.com/hirepath/earnings-engine/internal/preset"
)

// field identifies which input row has focus.
type field int

const (
	fieldTool field = iota
	fieldRole
	fieldCity
	fieldShift
	fieldHours
	fieldCount
)

func (f field) String() string {
	switch f {
	case fieldTool:
		return "Tool"
	case fieldRole:
		return "Role"
	case fieldCity:
		return "City"
	case fieldShift:
		return "Shift"
	case fieldHours:
		return "Hours/week"
	default:
		return "Unknown"
	}
}

// Model holds the full state of the calculator screen.
type Model struct {
	engine *calculation.Engine

	tools  []preset.Config
	roles  []domain.RoleWageProfile
	cities []domain.CityCostProfile
	shifts []domain.ShiftDifferentialRule

	toolIdx  int
	roleIdx  int
	cityIdx  int
	shiftIdx int
	hours    decimal.Decimal

	focus field

	result *domain.CalculationResult
	err    error

	width  int
	height int
}

// NewModel builds the initial state from the engine's reference data.
// The first tool, role and city are preselected so the screen shows a
// result immediately.
func NewModel(engine *calculation.Engine) Model {
	m := Model{
		engine: engine,
		tools:  engine.Presets().List(),
		roles:  engine.Reference().Roles(),
		cities: engine.Reference().Cities(),
		shifts: engine.Reference().Differentials(),
		width:  80,
		height: 24,
	}
	for i, rule := range m.shifts {
		if rule.ID == "regular" {
			m.shiftIdx = i
			break
		}
	}
	m.hours = m.tools[m.toolIdx].DefaultHours
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// recompute runs the selected tool against the current selections.
// The engine is pure CPU with no I/O, so this is done inline rather
// than behind a tea.Cmd.
func (m *Model) recompute() {
	params := map[string]interface{}{
		"roleId":       m.roles[m.roleIdx].ID,
		"citySlug":     m.cities[m.cityIdx].Slug,
		"hoursPerWeek": m.hours,
		"shiftMix": []interface{}{
			map[string]interface{}{
				"rule":  m.shifts[m.shiftIdx].ID,
				"hours": m.hours,
			},
		},
	}
	m.result, m.err = m.engine.Compute(m.tools[m.toolIdx].ToolID, params)
}
