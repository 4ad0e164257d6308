package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hirepath/earnings-engine/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Localize adjusts a role's national wage range by a city's
// cost-of-living index.
//
// Floor policy: the localized minimum is never depressed below the
// role's national minimum, even in a low-cost city. The maximum is not
// floored. Both bounds round to the cent (half away from zero)
// independently, which with a near-100 index and min close to max can
// flip the ordering by a cent; the maximum is clamped back up to the
// minimum after rounding.
func Localize(role domain.RoleWageProfile, city domain.CityCostProfile) (domain.HourlyRange, error) {
	if city.CostOfLivingIndex.LessThanOrEqual(decimal.Zero) {
		return domain.HourlyRange{}, fmt.Errorf("%w: city %s cost of living index must be positive, got %s",
			domain.ErrInvalidProfile, city.Slug, city.CostOfLivingIndex)
	}

	adjustment := city.CostOfLivingIndex.Div(hundred)
	min := role.BaseHourlyRange.Min.Mul(adjustment).Round(2)
	max := role.BaseHourlyRange.Max.Mul(adjustment).Round(2)

	if min.LessThan(role.BaseHourlyRange.Min) {
		min = role.BaseHourlyRange.Min
	}
	if max.LessThan(min) {
		max = min
	}

	return domain.HourlyRange{Min: min, Max: max}, nil
}
