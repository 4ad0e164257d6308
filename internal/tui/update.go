package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Inc  key.Binding
	Dec  key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down", "j"),
		key.WithHelp("tab/↓", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up", "k"),
		key.WithHelp("shift+tab/↑", "previous field"),
	),
	Inc: key.NewBinding(
		key.WithKeys("right", "l", "+", "="),
		key.WithHelp("→", "next value"),
	),
	Dec: key.NewBinding(
		key.WithKeys("left", "h", "-"),
		key.WithHelp("←", "previous value"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

var (
	hoursStep = decimal.NewFromInt(1)
	hoursMin  = decimal.NewFromInt(1)
	hoursMax  = decimal.NewFromInt(80)
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Next):
			m.focus = (m.focus + 1) % fieldCount

		case key.Matches(msg, keys.Prev):
			m.focus = (m.focus + fieldCount - 1) % fieldCount

		case key.Matches(msg, keys.Inc):
			m.cycle(1)
			m.recompute()

		case key.Matches(msg, keys.Dec):
			m.cycle(-1)
			m.recompute()
		}
		return m, nil
	}

	return m, nil
}

// cycle advances the focused field by delta. Selection fields wrap;
// hours clamp to [1, 80] since schedules outside that range are not
// meaningful weekly projections.
func (m *Model) cycle(delta int) {
	switch m.focus {
	case fieldTool:
		m.toolIdx = wrap(m.toolIdx+delta, len(m.tools))
		m.hours = m.tools[m.toolIdx].DefaultHours
	case fieldRole:
		m.roleIdx = wrap(m.roleIdx+delta, len(m.roles))
	case fieldCity:
		m.cityIdx = wrap(m.cityIdx+delta, len(m.cities))
	case fieldShift:
		m.shiftIdx = wrap(m.shiftIdx+delta, len(m.shifts))
	case fieldHours:
		next := m.hours.Add(hoursStep.Mul(decimal.NewFromInt(int64(delta))))
		if next.LessThan(hoursMin) {
			next = hoursMin
		}
		if next.GreaterThan(hoursMax) {
			next = hoursMax
		}
		m.hours = next
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
