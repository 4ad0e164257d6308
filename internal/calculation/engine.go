// Package calculation implements the earnings and tax estimation
// pipeline: wage localization, schedule projection and progressive
// tax resolution. Every operation is a pure function of its inputs
// plus the injected reference tables; the engine holds no mutable
// state and is safe for concurrent use.
package calculation

import (
	"fmt"

	"github.com/hirepath/earnings-engine/internal/domain"
	"github.com/hirepath/earnings-engine/internal/preset"
	"github.com/hirepath/earnings-engine/internal/refdata"
)

// Engine orchestrates the calculation pipeline. It owns nothing but
// references to immutable data, so a single Engine serves any number
// of concurrent callers.
type Engine struct {
	ref     *refdata.ReferenceData
	presets *preset.Registry
}

// NewEngine creates an engine over an injected reference data bundle.
func NewEngine(ref *refdata.ReferenceData) *Engine {
	return &Engine{
		ref:     ref,
		presets: preset.NewRegistry(),
	}
}

// Reference exposes the engine's reference tables for read-only use
// by consumers (listings, TUI option cycling).
func (e *Engine) Reference() *refdata.ReferenceData {
	return e.ref
}

// Presets exposes the tool registry.
func (e *Engine) Presets() *preset.Registry {
	return e.presets
}

// Compute is the single entry point consumers call: it resolves a
// tool id and raw parameters into a validated request and runs the
// pipeline. Identical inputs always produce identical results.
func (e *Engine) Compute(toolID string, params map[string]any) (*domain.CalculationResult, error) {
	req, err := e.presets.Resolve(toolID, params, e.ref)
	if err != nil {
		return nil, err
	}
	return e.Run(req)
}

// ComputeVariants runs the pipeline once per preset hours variant,
// producing the side-by-side results some tools render (e.g. weekly
// earnings at 20 and 40 hours). A caller-supplied hoursPerWeek
// collapses the variants to that single schedule.
func (e *Engine) ComputeVariants(toolID string, params map[string]any) ([]*domain.CalculationResult, error) {
	reqs, err := e.presets.ResolveVariants(toolID, params, e.ref)
	if err != nil {
		return nil, err
	}
	results := make([]*domain.CalculationResult, 0, len(reqs))
	for _, req := range reqs {
		result, err := e.Run(req)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Run executes localization, projection and tax resolution for an
// already-resolved request and assembles a fresh result value.
func (e *Engine) Run(req *domain.CalculationRequest) (*domain.CalculationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	role, err := e.ref.Role(req.RoleID)
	if err != nil {
		return nil, err
	}
	city, err := e.ref.City(req.CitySlug)
	if err != nil {
		return nil, err
	}

	localized, err := Localize(role, city)
	if err != nil {
		return nil, err
	}

	// Midpoint of the localized range is the representative rate
	// unless the request pins a specific point rate.
	rate := localized.Midpoint()
	if req.PointRate != nil {
		rate = *req.PointRate
	}

	mix := make([]ResolvedSegment, 0, len(req.ShiftMix))
	for _, seg := range req.ShiftMix {
		rule, err := e.ref.Differential(seg.RuleID)
		if err != nil {
			return nil, err
		}
		mix = append(mix, ResolvedSegment{Rule: rule, Hours: seg.Hours})
	}

	projection, err := Project(rate, req.HoursPerWeek, mix, e.ref.Overtime())
	if err != nil {
		return nil, err
	}

	result := &domain.CalculationResult{
		ToolID:               req.ToolID,
		RoleID:               req.RoleID,
		CitySlug:             req.CitySlug,
		HoursPerWeek:         req.HoursPerWeek,
		LocalizedHourlyRange: localized,
		HourlyRate:           rate,
		GrossWeekly:          projection.GrossWeekly,
		GrossAnnual:          projection.GrossAnnual,
		TaxBreakdown:         []domain.TaxLine{},
		NetWeekly:            projection.GrossWeekly,
		NetAnnual:            projection.GrossAnnual,
	}

	if !req.IncludeTaxes {
		return result, nil
	}

	federal, err := e.ref.Jurisdiction(domain.JurisdictionFederal)
	if err != nil {
		return nil, err
	}
	state, err := e.ref.Jurisdiction(req.JurisdictionID)
	if err != nil {
		return nil, fmt.Errorf("state for city %s: %w", req.CitySlug, err)
	}

	summary := ResolveTaxes(projection.GrossAnnual, []domain.TaxJurisdiction{federal, state})
	result.TaxBreakdown = summary.Breakdown
	result.NetAnnual = summary.NetAnnual
	result.NetWeekly = summary.NetAnnual.Div(weeksPerYear).Round(2)

	return result, nil
}
