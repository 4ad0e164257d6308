package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// HourlyRange represents an hourly wage range in USD.
type HourlyRange struct {
	Min decimal.Decimal `yaml:"min" json:"min"`
	Max decimal.Decimal `yaml:"max" json:"max"`
}

// Midpoint returns the representative point rate for the range.
// The midpoint is intentionally not rounded; rounding happens once,
// at the end of each calculation stage.
func (hr HourlyRange) Midpoint() decimal.Decimal {
	return hr.Min.Add(hr.Max).Div(decimal.NewFromInt(2))
}

// Validate checks the min/max ordering and sign invariants.
func (hr HourlyRange) Validate() error {
	if hr.Min.IsNegative() || hr.Max.IsNegative() {
		return fmt.Errorf("%w: hourly range bounds cannot be negative", ErrInvalidProfile)
	}
	if hr.Min.GreaterThan(hr.Max) {
		return fmt.Errorf("%w: hourly range min %s exceeds max %s", ErrInvalidProfile, hr.Min, hr.Max)
	}
	return nil
}

// RoleWageProfile represents the national base wage data for a role.
type RoleWageProfile struct {
	ID              string      `yaml:"id" json:"id"`
	Title           string      `yaml:"title" json:"title"`
	Industry        string      `yaml:"industry" json:"industry"`
	BaseHourlyRange HourlyRange `yaml:"base_hourly_range" json:"baseHourlyRange"`
}

// Validate checks the role profile invariants.
func (r RoleWageProfile) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: role id is required", ErrInvalidProfile)
	}
	if err := r.BaseHourlyRange.Validate(); err != nil {
		return fmt.Errorf("role %s: %w", r.ID, err)
	}
	return nil
}

// ExpenseBaseline represents typical monthly expenses for a city.
type ExpenseBaseline struct {
	Rent      decimal.Decimal `yaml:"rent" json:"rent"`
	Groceries decimal.Decimal `yaml:"groceries" json:"groceries"`
	Transport decimal.Decimal `yaml:"transport" json:"transport"`
}

// CityCostProfile represents cost-of-living data for a city.
// CostOfLivingIndex is normalized so 100 = national average.
type CityCostProfile struct {
	Slug              string          `yaml:"slug" json:"slug"`
	Name              string          `yaml:"name" json:"name"`
	State             string          `yaml:"state" json:"state"`
	CostOfLivingIndex decimal.Decimal `yaml:"cost_of_living_index" json:"costOfLivingIndex"`
	ExpenseBaseline   ExpenseBaseline `yaml:"expense_baseline" json:"expenseBaseline"`
}

// Validate checks the city profile invariants.
func (c CityCostProfile) Validate() error {
	if c.Slug == "" {
		return fmt.Errorf("%w: city slug is required", ErrInvalidProfile)
	}
	if c.State == "" {
		return fmt.Errorf("%w: city %s has no state", ErrInvalidProfile, c.Slug)
	}
	if c.CostOfLivingIndex.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: city %s cost of living index must be positive, got %s",
			ErrInvalidProfile, c.Slug, c.CostOfLivingIndex)
	}
	return nil
}

// ShiftDifferentialRule represents a pay adjustment for hours worked
// under special conditions (night, weekend, holiday). A rule carries
// either a multiplicative factor or a fixed per-hour add-on, never both.
type ShiftDifferentialRule struct {
	ID         string          `yaml:"id" json:"id"`
	AppliesTo  string          `yaml:"applies_to" json:"appliesTo"`
	Multiplier decimal.Decimal `yaml:"multiplier,omitempty" json:"multiplier,omitempty"`
	AddOn      decimal.Decimal `yaml:"add_on,omitempty" json:"addOn,omitempty"`
}

// EffectiveRate applies the differential to a base hourly rate.
func (r ShiftDifferentialRule) EffectiveRate(base decimal.Decimal) decimal.Decimal {
	if r.AddOn.IsPositive() {
		return base.Add(r.AddOn)
	}
	if r.Multiplier.IsPositive() {
		return base.Mul(r.Multiplier)
	}
	return base
}

// Validate checks the differential rule invariants.
func (r ShiftDifferentialRule) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: differential rule id is required", ErrInvalidProfile)
	}
	if r.Multiplier.IsPositive() && r.AddOn.IsPositive() {
		return fmt.Errorf("%w: rule %s sets both multiplier and add-on", ErrInvalidProfile, r.ID)
	}
	if r.AddOn.IsNegative() {
		return fmt.Errorf("%w: rule %s add-on cannot be negative", ErrInvalidProfile, r.ID)
	}
	if !r.Multiplier.IsZero() && r.Multiplier.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: rule %s multiplier must be >= 1.0, got %s", ErrInvalidProfile, r.ID, r.Multiplier)
	}
	return nil
}

// OvertimeRule represents the weekly overtime policy. Hours beyond
// ThresholdHours are re-rated at Multiplier times the effective rate.
type OvertimeRule struct {
	ThresholdHours decimal.Decimal `yaml:"threshold_hours" json:"thresholdHours"`
	Multiplier     decimal.Decimal `yaml:"multiplier" json:"multiplier"`
}

// DefaultOvertimeRule returns the standard 40-hour, time-and-a-half rule.
func DefaultOvertimeRule() OvertimeRule {
	return OvertimeRule{
		ThresholdHours: decimal.NewFromInt(40),
		Multiplier:     decimal.NewFromFloat(1.5),
	}
}

// Validate checks the overtime rule invariants.
func (o OvertimeRule) Validate() error {
	if o.ThresholdHours.IsNegative() {
		return fmt.Errorf("%w: overtime threshold cannot be negative", ErrInvalidProfile)
	}
	if o.Multiplier.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: overtime multiplier must be >= 1.0, got %s", ErrInvalidProfile, o.Multiplier)
	}
	return nil
}
