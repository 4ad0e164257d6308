package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ShiftSegment represents a block of weekly hours worked under one
// differential rule. Declaration order matters: when a week crosses
// the overtime threshold, earlier segments are treated as regular
// time first and the remainder is overtime.
type ShiftSegment struct {
	RuleID string          `yaml:"rule" json:"rule"`
	Hours  decimal.Decimal `yaml:"hours" json:"hours"`
}

// CalculationRequest is a fully resolved, validated request: the
// output of the preset resolver and the input to the engine pipeline.
type CalculationRequest struct {
	ToolID         string           `json:"toolId"`
	RoleID         string           `json:"roleId"`
	CitySlug       string           `json:"citySlug"`
	JurisdictionID string           `json:"jurisdictionId"`
	HoursPerWeek   decimal.Decimal  `json:"hoursPerWeek"`
	ShiftMix       []ShiftSegment   `json:"shiftMix"`
	PointRate      *decimal.Decimal `json:"pointRate,omitempty"`
	IncludeTaxes   bool             `json:"includeTaxes"`
}

// Validate checks the schedule invariants: non-negative hours and a
// shift mix that reconciles with the declared weekly hours.
func (cr CalculationRequest) Validate() error {
	if cr.HoursPerWeek.IsNegative() {
		return fmt.Errorf("%w: hours per week cannot be negative, got %s", ErrInvalidSchedule, cr.HoursPerWeek)
	}
	total := decimal.Zero
	for _, seg := range cr.ShiftMix {
		if seg.Hours.IsNegative() {
			return fmt.Errorf("%w: segment %s has negative hours", ErrInvalidSchedule, seg.RuleID)
		}
		total = total.Add(seg.Hours)
	}
	if !total.Equal(cr.HoursPerWeek) {
		return fmt.Errorf("%w: shift mix hours %s do not sum to declared %s",
			ErrInvalidSchedule, total, cr.HoursPerWeek)
	}
	return nil
}

// TaxLine represents one itemized withholding in a result breakdown.
type TaxLine struct {
	JurisdictionLabel string          `json:"jurisdictionLabel"`
	Amount            decimal.Decimal `json:"amount"`
}

// CalculationResult is the value returned to callers. It is produced
// fresh per request and never mutated after construction.
type CalculationResult struct {
	ToolID               string          `json:"toolId"`
	RoleID               string          `json:"roleId"`
	CitySlug             string          `json:"citySlug"`
	HoursPerWeek         decimal.Decimal `json:"hoursPerWeek"`
	LocalizedHourlyRange HourlyRange     `json:"localizedHourlyRange"`
	HourlyRate           decimal.Decimal `json:"hourlyRate"`
	GrossWeekly          decimal.Decimal `json:"grossWeekly"`
	GrossAnnual          decimal.Decimal `json:"grossAnnual"`
	TaxBreakdown         []TaxLine       `json:"taxBreakdown"`
	NetWeekly            decimal.Decimal `json:"netWeekly"`
	NetAnnual            decimal.Decimal `json:"netAnnual"`
}

// TotalTax returns the sum of all breakdown line amounts.
func (r CalculationResult) TotalTax() decimal.Decimal {
	total := decimal.Zero
	for _, line := range r.TaxBreakdown {
		total = total.Add(line.Amount)
	}
	return total
}
