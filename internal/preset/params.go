package preset

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hirepath/earnings-engine/internal/domain"
)

// Parameter keys shared by every tool's schema.
const (
	paramRole     = "roleId"
	paramCity     = "citySlug"
	paramHours    = "hoursPerWeek"
	paramShiftMix = "shiftMix"
	paramRate     = "pointRate"
)

// maxWeeklyHours caps hoursPerWeek at the number of hours in a week.
var maxWeeklyHours = decimal.NewFromInt(168)

// params is the typed form of a tool's raw parameter map.
type params struct {
	roleID       string
	citySlug     string
	hoursPerWeek *decimal.Decimal
	shiftMix     []domain.ShiftSegment
	pointRate    *decimal.Decimal
}

// parseParams validates a raw parameter map against the shared tool
// schema. Parameters arrive JSON-shaped (map[string]any with float64
// numbers) from the HTTP surface, or string-valued from CLI flags;
// both coerce through toDecimal.
func parseParams(raw map[string]any) (params, error) {
	var p params

	for key := range raw {
		switch key {
		case paramRole, paramCity, paramHours, paramShiftMix, paramRate:
		default:
			return p, fmt.Errorf("%w: unknown parameter %q", domain.ErrValidation, key)
		}
	}

	var err error
	if p.roleID, err = requireString(raw, paramRole); err != nil {
		return p, err
	}
	if p.citySlug, err = requireString(raw, paramCity); err != nil {
		return p, err
	}

	if v, ok := raw[paramHours]; ok {
		hours, err := toDecimal(paramHours, v)
		if err != nil {
			return p, err
		}
		if hours.IsNegative() || hours.GreaterThan(maxWeeklyHours) {
			return p, fmt.Errorf("%w: %s must be in [0, 168], got %s", domain.ErrValidation, paramHours, hours)
		}
		p.hoursPerWeek = &hours
	}

	if v, ok := raw[paramRate]; ok {
		rate, err := toDecimal(paramRate, v)
		if err != nil {
			return p, err
		}
		if rate.LessThanOrEqual(decimal.Zero) {
			return p, fmt.Errorf("%w: %s must be positive, got %s", domain.ErrValidation, paramRate, rate)
		}
		p.pointRate = &rate
	}

	if v, ok := raw[paramShiftMix]; ok {
		if p.shiftMix, err = parseShiftMix(v); err != nil {
			return p, err
		}
	}

	return p, nil
}

func requireString(raw map[string]any, key string) (string, error) {
	v, ok := raw[key]
	if !ok {
		return "", fmt.Errorf("%w: %s is required", domain.ErrValidation, key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: %s must be a non-empty string", domain.ErrValidation, key)
	}
	return s, nil
}

func parseShiftMix(v any) ([]domain.ShiftSegment, error) {
	entries, err := toSlice(v)
	if err != nil {
		return nil, err
	}
	mix := make([]domain.ShiftSegment, 0, len(entries))
	for i, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: shiftMix[%d] must be an object with rule and hours", domain.ErrValidation, i)
		}
		rule, ok := m["rule"].(string)
		if !ok || rule == "" {
			return nil, fmt.Errorf("%w: shiftMix[%d] rule must be a non-empty string", domain.ErrValidation, i)
		}
		hoursRaw, ok := m["hours"]
		if !ok {
			return nil, fmt.Errorf("%w: shiftMix[%d] hours is required", domain.ErrValidation, i)
		}
		hours, err := toDecimal(fmt.Sprintf("shiftMix[%d].hours", i), hoursRaw)
		if err != nil {
			return nil, err
		}
		if hours.IsNegative() {
			return nil, fmt.Errorf("%w: shiftMix[%d] hours cannot be negative", domain.ErrValidation, i)
		}
		mix = append(mix, domain.ShiftSegment{RuleID: rule, Hours: hours})
	}
	return mix, nil
}

func toSlice(v any) ([]any, error) {
	switch s := v.(type) {
	case []any:
		return s, nil
	case []map[string]any:
		out := make([]any, len(s))
		for i := range s {
			out[i] = s[i]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: shiftMix must be a list", domain.ErrValidation)
	}
}

// toDecimal coerces the numeric representations the engine's callers
// produce: float64 from JSON decoding, int from Go literals, string
// from CLI flags, decimal.Decimal from internal callers.
func toDecimal(name string, v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: %s is not a number: %q", domain.ErrValidation, name, n)
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %s must be a number, got %T", domain.ErrValidation, name, v)
	}
}
