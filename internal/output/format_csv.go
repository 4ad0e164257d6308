package output

import (
	"bytes"
	"encoding/csv"

	"github.com/hirepath/earnings-engine/internal/domain"
)

// CSVFormatter renders a flat row per result, suitable for feeding
// static data tables in the content build.
type CSVFormatter struct{}

// Name implements Formatter.
func (cf *CSVFormatter) Name() string { return "csv" }

// Format implements Formatter.
func (cf *CSVFormatter) Format(results []*domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"tool", "role", "city", "hours_per_week",
		"localized_min", "localized_max", "hourly_rate",
		"gross_weekly", "gross_annual", "total_tax", "net_weekly", "net_annual",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range results {
		row := []string{
			r.ToolID,
			r.RoleID,
			r.CitySlug,
			r.HoursPerWeek.String(),
			r.LocalizedHourlyRange.Min.StringFixed(2),
			r.LocalizedHourlyRange.Max.StringFixed(2),
			r.HourlyRate.StringFixed(2),
			r.GrossWeekly.StringFixed(2),
			r.GrossAnnual.StringFixed(2),
			r.TotalTax().StringFixed(2),
			r.NetWeekly.StringFixed(2),
			r.NetAnnual.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
