package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// JurisdictionFederal is the id of the federal jurisdiction. It is the
// only jurisdiction that carries flat FICA rates.
const JurisdictionFederal = "federal"

// TaxBracket represents one step of a progressive tax schedule. The
// bracket covers income from the previous bracket's upper bound up to
// UpperBound. The terminal bracket leaves UpperBound zero, meaning the
// bracket extends to infinity.
type TaxBracket struct {
	UpperBound decimal.Decimal `yaml:"upper_bound,omitempty" json:"upperBound,omitempty"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether this bracket extends to infinity.
func (b TaxBracket) Unbounded() bool {
	return b.UpperBound.IsZero()
}

// FICARates represents the flat payroll withholding rates applied on
// top of progressive brackets. Only the federal jurisdiction has them.
type FICARates struct {
	SocialSecurity decimal.Decimal `yaml:"fica_social_security" json:"ficaSocialSecurity"`
	Medicare       decimal.Decimal `yaml:"fica_medicare" json:"ficaMedicare"`
}

// TaxJurisdiction represents one taxing authority: an ordered
// progressive bracket schedule plus optional flat rates. A state with
// no income tax is a jurisdiction with an empty bracket sequence, not
// a missing entry.
type TaxJurisdiction struct {
	ID        string       `yaml:"id" json:"id"`
	Label     string       `yaml:"label" json:"label"`
	Brackets  []TaxBracket `yaml:"brackets" json:"brackets"`
	FlatRates *FICARates   `yaml:"flat_rates,omitempty" json:"flatRates,omitempty"`
}

// Validate checks the progressive schedule invariants: upper bounds
// strictly increasing, rates non-decreasing, only the terminal bracket
// unbounded, no negative rates.
func (j TaxJurisdiction) Validate() error {
	if j.ID == "" {
		return fmt.Errorf("%w: jurisdiction id is required", ErrInvalidProfile)
	}
	prevBound := decimal.Zero
	prevRate := decimal.Zero
	for i, b := range j.Brackets {
		if b.Rate.IsNegative() {
			return fmt.Errorf("%w: jurisdiction %s bracket %d has negative rate", ErrInvalidProfile, j.ID, i)
		}
		if b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%w: jurisdiction %s bracket %d rate exceeds 100%%", ErrInvalidProfile, j.ID, i)
		}
		if b.Rate.LessThan(prevRate) {
			return fmt.Errorf("%w: jurisdiction %s bracket %d rate decreases", ErrInvalidProfile, j.ID, i)
		}
		prevRate = b.Rate
		if b.Unbounded() {
			if i != len(j.Brackets)-1 {
				return fmt.Errorf("%w: jurisdiction %s bracket %d is unbounded but not last", ErrInvalidProfile, j.ID, i)
			}
			continue
		}
		if b.UpperBound.LessThanOrEqual(prevBound) {
			return fmt.Errorf("%w: jurisdiction %s bracket %d upper bound %s does not increase",
				ErrInvalidProfile, j.ID, i, b.UpperBound)
		}
		prevBound = b.UpperBound
	}
	// A bounded terminal bracket would leave a gap up to infinity.
	if n := len(j.Brackets); n > 0 && !j.Brackets[n-1].Unbounded() {
		return fmt.Errorf("%w: jurisdiction %s terminal bracket must be unbounded", ErrInvalidProfile, j.ID)
	}
	if j.FlatRates != nil {
		if j.FlatRates.SocialSecurity.IsNegative() || j.FlatRates.Medicare.IsNegative() {
			return fmt.Errorf("%w: jurisdiction %s has negative flat rates", ErrInvalidProfile, j.ID)
		}
		if j.ID != JurisdictionFederal {
			return fmt.Errorf("%w: jurisdiction %s carries FICA rates but only %s may",
				ErrInvalidProfile, j.ID, JurisdictionFederal)
		}
	}
	return nil
}

// HasIncomeTax reports whether the jurisdiction levies any income tax.
func (j TaxJurisdiction) HasIncomeTax() bool {
	return len(j.Brackets) > 0
}
