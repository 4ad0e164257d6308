package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/hirepath/earnings-engine/internal/domain"
)

// Breakdown line labels for the federal flat-rate withholdings.
const (
	labelSocialSecurity = "Social Security (FICA)"
	labelMedicare       = "Medicare (FICA)"
)

// TaxSummary holds the itemized withholding breakdown and net income
// for one gross annual figure.
type TaxSummary struct {
	Breakdown []domain.TaxLine
	NetAnnual decimal.Decimal
}

// ResolveTaxes runs a gross annual income through each jurisdiction's
// progressive schedule plus the federal flat FICA rates.
//
// Bracket math is standard marginal taxation: income passing through a
// bracket is taxed at that bracket's rate only on the portion between
// the previous bound and min(income, upper bound). Accumulation stays
// unrounded across brackets; each breakdown line rounds to the cent
// only at final summation so rounding error never compounds.
//
// A jurisdiction with an empty bracket table contributes an explicit
// zero line rather than being omitted, so callers can render "no state
// income tax" instead of silently dropping it.
func ResolveTaxes(grossAnnual decimal.Decimal, jurisdictions []domain.TaxJurisdiction) TaxSummary {
	breakdown := make([]domain.TaxLine, 0, len(jurisdictions)+2)

	for _, j := range jurisdictions {
		breakdown = append(breakdown, domain.TaxLine{
			JurisdictionLabel: j.Label,
			Amount:            BracketTax(grossAnnual, j.Brackets).Round(2),
		})

		if j.FlatRates != nil {
			breakdown = append(breakdown,
				domain.TaxLine{
					JurisdictionLabel: labelSocialSecurity,
					Amount:            grossAnnual.Mul(j.FlatRates.SocialSecurity).Round(2),
				},
				domain.TaxLine{
					JurisdictionLabel: labelMedicare,
					Amount:            grossAnnual.Mul(j.FlatRates.Medicare).Round(2),
				},
			)
		}
	}

	net := grossAnnual
	for _, line := range breakdown {
		net = net.Sub(line.Amount)
	}

	return TaxSummary{
		Breakdown: breakdown,
		NetAnnual: net.Round(2),
	}
}

// BracketTax walks a progressive schedule and returns the unrounded
// tax owed on income. An empty schedule owes zero.
func BracketTax(income decimal.Decimal, brackets []domain.TaxBracket) decimal.Decimal {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	tax := decimal.Zero
	prevBound := decimal.Zero
	for _, b := range brackets {
		upper := b.UpperBound
		if b.Unbounded() {
			upper = income
		}
		portion := decimal.Min(income, upper).Sub(prevBound)
		if portion.LessThanOrEqual(decimal.Zero) {
			break
		}
		tax = tax.Add(portion.Mul(b.Rate))
		prevBound = upper
		if income.LessThanOrEqual(upper) {
			break
		}
	}
	return tax
}
