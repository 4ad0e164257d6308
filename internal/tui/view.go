package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Earnings Calculator"))
	b.WriteString("\n\n")

	b.WriteString(m.renderField(fieldTool, m.tools[m.toolIdx].ToolID))
	b.WriteString(m.renderField(fieldRole, m.roles[m.roleIdx].Title))
	b.WriteString(m.renderField(fieldCity, m.cities[m.cityIdx].Name))
	b.WriteString(m.renderField(fieldShift, m.shifts[m.shiftIdx].ID))
	b.WriteString(m.renderField(fieldHours, m.hours.String()))

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	} else if m.result != nil {
		b.WriteString(m.renderResult())
	}

	b.WriteString(helpStyle.Render(
		"tab/↑↓ focus field • ←/→ change value • q quit"))

	return appStyle.Render(b.String())
}

func (m Model) renderField(f field, value string) string {
	style := fieldValueStyle
	marker := "  "
	if f == m.focus {
		style = focusedValueStyle
		marker = "> "
	}
	return fmt.Sprintf("%s%s %s\n",
		marker,
		fieldLabelStyle.Render(f.String()),
		style.Render("‹ "+value+" ›"))
}

func (m Model) renderResult() string {
	res := m.result
	var b strings.Builder

	metric := func(label, value string) {
		b.WriteString(metricLabelStyle.Render(label))
		b.WriteString(metricValueStyle.Render("$" + value))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Localized range: $%s – $%s/hr  (rate $%s)\n\n",
		res.LocalizedHourlyRange.Min.StringFixed(2),
		res.LocalizedHourlyRange.Max.StringFixed(2),
		res.HourlyRate.StringFixed(2)))

	metric("Gross weekly", res.GrossWeekly.StringFixed(2))
	metric("Gross annual", res.GrossAnnual.StringFixed(2))

	if len(res.TaxBreakdown) > 0 {
		b.WriteString("\n")
		for _, line := range res.TaxBreakdown {
			b.WriteString(taxLineStyle.Render(fmt.Sprintf("  %-32s -$%s",
				line.JurisdictionLabel, line.Amount.StringFixed(2))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		metric("Net weekly", res.NetWeekly.StringFixed(2))
		metric("Net annual", res.NetAnnual.StringFixed(2))
	}

	return "\n" + panelStyle.Width(min(m.width-6, 60)).Render(
		strings.TrimRight(b.String(), "\n")) + "\n"
}
