package output

import (
	"fmt"
	"strings"

	"github.com/hirepath/earnings-engine/internal/domain"
)

// TableFormatter renders results as a console table.
type TableFormatter struct{}

// Name implements Formatter.
func (tf *TableFormatter) Name() string { return "table" }

// Format implements Formatter.
func (tf *TableFormatter) Format(results []*domain.CalculationResult) ([]byte, error) {
	var sb strings.Builder

	if len(results) == 0 {
		return []byte("no results\n"), nil
	}

	first := results[0]
	sb.WriteString("EARNINGS ESTIMATE\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Tool: %s   Role: %s   City: %s\n", first.ToolID, first.RoleID, first.CitySlug))
	sb.WriteString(fmt.Sprintf("Localized hourly range: $%s - $%s (midpoint rate $%s)\n",
		first.LocalizedHourlyRange.Min.StringFixed(2),
		first.LocalizedHourlyRange.Max.StringFixed(2),
		first.HourlyRate.StringFixed(2)))
	sb.WriteString("\n")

	labelWidth := 24
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s", labelWidth, ""))
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("%*s", numWidth, fmt.Sprintf("%s hrs/wk", r.HoursPerWeek.String())))
	}
	sb.WriteString("\n" + strings.Repeat("-", labelWidth+numWidth*len(results)) + "\n")

	writeRow := func(label string, pick func(*domain.CalculationResult) string) {
		sb.WriteString(fmt.Sprintf("%-*s", labelWidth, label))
		for _, r := range results {
			sb.WriteString(fmt.Sprintf("%*s", numWidth, pick(r)))
		}
		sb.WriteString("\n")
	}

	writeRow("Gross weekly", func(r *domain.CalculationResult) string { return "$" + r.GrossWeekly.StringFixed(2) })
	writeRow("Gross annual", func(r *domain.CalculationResult) string { return "$" + r.GrossAnnual.StringFixed(2) })

	if len(first.TaxBreakdown) > 0 {
		sb.WriteString("\nWITHHOLDING\n")
		for i, line := range first.TaxBreakdown {
			idx := i
			writeRow(line.JurisdictionLabel, func(r *domain.CalculationResult) string {
				return "$" + r.TaxBreakdown[idx].Amount.StringFixed(2)
			})
		}
		sb.WriteString(strings.Repeat("-", labelWidth+numWidth*len(results)) + "\n")
		writeRow("Net weekly", func(r *domain.CalculationResult) string { return "$" + r.NetWeekly.StringFixed(2) })
		writeRow("Net annual", func(r *domain.CalculationResult) string { return "$" + r.NetAnnual.StringFixed(2) })
	}

	sb.WriteString(strings.Repeat("=", 72) + "\n")
	return []byte(sb.String()), nil
}
