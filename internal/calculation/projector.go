package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hirepath/earnings-engine/internal/domain"
)

var weeksPerYear = decimal.NewFromInt(52)

// Projection holds gross earnings projected from a weekly schedule.
type Projection struct {
	GrossWeekly decimal.Decimal
	GrossAnnual decimal.Decimal
}

// ResolvedSegment is a shift-mix entry with its differential rule
// already looked up, ready for projection.
type ResolvedSegment struct {
	Rule  domain.ShiftDifferentialRule
	Hours decimal.Decimal
}

// Project expands an hourly base rate into weekly and annual gross
// figures under a shift mix and overtime rule.
//
// Overtime allocation follows declaration order: segments are walked
// as declared, hours up to the weekly threshold accrue at the
// segment's effective rate, and whatever falls past the threshold is
// re-rated at the overtime multiplier. The ordering is a deliberate
// tie-break; real-world overtime allocation across mixed differential
// shifts is ambiguous, and declaration order keeps it deterministic.
//
// Annual gross is weekly times 52, with no partial-year adjustment.
// Rounding to the cent happens once, on the final sums.
func Project(rate, hoursPerWeek decimal.Decimal, mix []ResolvedSegment, overtime domain.OvertimeRule) (Projection, error) {
	if hoursPerWeek.IsNegative() {
		return Projection{}, fmt.Errorf("%w: hours per week cannot be negative, got %s",
			domain.ErrInvalidSchedule, hoursPerWeek)
	}

	total := decimal.Zero
	for _, seg := range mix {
		if seg.Hours.IsNegative() {
			return Projection{}, fmt.Errorf("%w: segment %s has negative hours",
				domain.ErrInvalidSchedule, seg.Rule.ID)
		}
		total = total.Add(seg.Hours)
	}
	if !total.Equal(hoursPerWeek) {
		return Projection{}, fmt.Errorf("%w: shift mix hours %s do not sum to declared %s",
			domain.ErrInvalidSchedule, total, hoursPerWeek)
	}

	gross := decimal.Zero
	regularLeft := overtime.ThresholdHours
	for _, seg := range mix {
		effective := seg.Rule.EffectiveRate(rate)

		regularHours := decimal.Min(seg.Hours, regularLeft)
		overtimeHours := seg.Hours.Sub(regularHours)
		regularLeft = regularLeft.Sub(regularHours)

		gross = gross.Add(regularHours.Mul(effective))
		if overtimeHours.IsPositive() {
			gross = gross.Add(overtimeHours.Mul(effective).Mul(overtime.Multiplier))
		}
	}

	weekly := gross.Round(2)
	return Projection{
		GrossWeekly: weekly,
		GrossAnnual: weekly.Mul(weeksPerYear).Round(2),
	}, nil
}
