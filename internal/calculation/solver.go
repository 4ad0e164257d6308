package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hirepath/earnings-engine/internal/domain"
	"github.com/hirepath/earnings-engine/internal/preset"
)

// SolverOptions bound the hours search.
type SolverOptions struct {
	MinHours      decimal.Decimal
	MaxHours      decimal.Decimal
	Tolerance     decimal.Decimal // acceptable net-weekly miss, in dollars
	MaxIterations int
}

// DefaultSolverOptions searches a 1 to 80 hour week to within a cent.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MinHours:      decimal.NewFromInt(1),
		MaxHours:      decimal.NewFromInt(80),
		Tolerance:     decimal.NewFromFloat(0.01),
		MaxIterations: 48,
	}
}

// SolveResult is the hours schedule that meets a net-weekly target,
// with the full calculation at that schedule.
type SolveResult struct {
	Hours      decimal.Decimal
	Result     *domain.CalculationResult
	Iterations int
}

// SolveHoursForNet finds the weekly hours at which a role in a city
// takes home the target net weekly amount, assuming a regular-shift
// schedule at the localized midpoint rate. Net pay is monotonically
// increasing in hours, so a bisection over the hours range converges.
func (e *Engine) SolveHoursForNet(roleID, citySlug string, targetNetWeekly decimal.Decimal, opts SolverOptions) (*SolveResult, error) {
	if !targetNetWeekly.IsPositive() {
		return nil, fmt.Errorf("%w: target net weekly must be positive, got %s",
			domain.ErrValidation, targetNetWeekly)
	}

	jurisdictionID, err := e.ref.JurisdictionForCity(citySlug)
	if err != nil {
		return nil, err
	}

	runAt := func(hours decimal.Decimal) (*domain.CalculationResult, error) {
		return e.Run(&domain.CalculationRequest{
			ToolID:         preset.ToolTakeHomePay,
			RoleID:         roleID,
			CitySlug:       citySlug,
			JurisdictionID: jurisdictionID,
			HoursPerWeek:   hours,
			ShiftMix: []domain.ShiftSegment{
				{RuleID: "regular", Hours: hours},
			},
			IncludeTaxes: true,
		})
	}

	ceiling, err := runAt(opts.MaxHours)
	if err != nil {
		return nil, err
	}
	if ceiling.NetWeekly.LessThan(targetNetWeekly) {
		return nil, fmt.Errorf("%w: target $%s/week exceeds $%s net at %s hours",
			domain.ErrValidation, targetNetWeekly.StringFixed(2),
			ceiling.NetWeekly.StringFixed(2), opts.MaxHours)
	}

	lo, hi := opts.MinHours, opts.MaxHours
	two := decimal.NewFromInt(2)
	var (
		best       *domain.CalculationResult
		bestHours  decimal.Decimal
		iterations int
	)

	for iterations < opts.MaxIterations {
		iterations++
		mid := lo.Add(hi).Div(two)

		result, err := runAt(mid)
		if err != nil {
			return nil, err
		}
		best, bestHours = result, mid

		diff := result.NetWeekly.Sub(targetNetWeekly)
		if diff.Abs().LessThanOrEqual(opts.Tolerance) {
			break
		}
		if diff.IsNegative() {
			lo = mid
		} else {
			hi = mid
		}
	}

	return &SolveResult{
		Hours:      bestHours.Round(2),
		Result:     best,
		Iterations: iterations,
	}, nil
}
