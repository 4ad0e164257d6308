// Package preset maps user-facing calculator tools to calculation
// configurations. The tool set is fixed at build time: a closed,
// explicit dispatch table rather than a plugin mechanism, so every
// behavior is traceable to a registration in NewRegistry.
package preset

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hirepath/earnings-engine/internal/domain"
	"github.com/hirepath/earnings-engine/internal/refdata"
)

// Tool identifiers.
const (
	ToolWeeklyEarnings = "weekly-earnings"
	ToolTakeHomePay    = "take-home-pay"
	ToolLocalizedRange = "localized-range"
)

// Config declares one calculator tool: its defaults and which stages
// of the pipeline it runs.
type Config struct {
	ToolID       string
	Description  string
	DefaultHours decimal.Decimal
	// VariantHours drives side-by-side rendering: one result per
	// entry when the caller does not pin a specific schedule.
	VariantHours []decimal.Decimal
	IncludeTaxes bool
}

// Registry is the closed dispatch table from tool id to Config.
type Registry struct {
	tools map[string]Config
	order []string
}

// NewRegistry returns the registry with every built-in tool
// registered. This is the single integration point new calculator
// tools are added through.
func NewRegistry() *Registry {
	r := &Registry{tools: make(map[string]Config)}

	r.register(Config{
		ToolID:       ToolWeeklyEarnings,
		Description:  "Weekly and annual earnings at part-time and full-time schedules",
		DefaultHours: decimal.NewFromInt(40),
		VariantHours: []decimal.Decimal{decimal.NewFromInt(20), decimal.NewFromInt(40)},
		IncludeTaxes: true,
	})
	r.register(Config{
		ToolID:       ToolTakeHomePay,
		Description:  "Estimated take-home pay for a flat 40-hour week",
		DefaultHours: decimal.NewFromInt(40),
		VariantHours: []decimal.Decimal{decimal.NewFromInt(40)},
		IncludeTaxes: true,
	})
	r.register(Config{
		ToolID:       ToolLocalizedRange,
		Description:  "Cost-of-living adjusted wage range for a role and city",
		DefaultHours: decimal.NewFromInt(40),
		VariantHours: []decimal.Decimal{decimal.NewFromInt(40)},
		IncludeTaxes: false,
	})

	return r
}

func (r *Registry) register(cfg Config) {
	r.tools[cfg.ToolID] = cfg
	r.order = append(r.order, cfg.ToolID)
}

// Get returns the config for a tool id.
func (r *Registry) Get(toolID string) (Config, error) {
	cfg, ok := r.tools[toolID]
	if !ok {
		return Config{}, fmt.Errorf("%w: %s", domain.ErrUnknownTool, toolID)
	}
	return cfg, nil
}

// List returns all tool configs in registration order.
func (r *Registry) List() []Config {
	out := make([]Config, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.tools[id])
	}
	return out
}

// Resolve assembles a validated CalculationRequest from a tool id and
// raw parameters, applying the tool's defaults. The city slug is
// resolved to its state jurisdiction here; an unmapped city fails with
// ErrUnknownCity, never a default jurisdiction.
func (r *Registry) Resolve(toolID string, rawParams map[string]any, ref *refdata.ReferenceData) (*domain.CalculationRequest, error) {
	cfg, err := r.Get(toolID)
	if err != nil {
		return nil, err
	}

	p, err := parseParams(rawParams)
	if err != nil {
		return nil, err
	}

	return r.assemble(cfg, p, cfg.DefaultHours, ref)
}

// ResolveVariants assembles one request per preset hours variant. A
// caller-supplied schedule (hoursPerWeek or shiftMix) pins a single
// variant instead.
func (r *Registry) ResolveVariants(toolID string, rawParams map[string]any, ref *refdata.ReferenceData) ([]*domain.CalculationRequest, error) {
	cfg, err := r.Get(toolID)
	if err != nil {
		return nil, err
	}

	p, err := parseParams(rawParams)
	if err != nil {
		return nil, err
	}

	if p.hoursPerWeek != nil || len(p.shiftMix) > 0 {
		req, err := r.assemble(cfg, p, cfg.DefaultHours, ref)
		if err != nil {
			return nil, err
		}
		return []*domain.CalculationRequest{req}, nil
	}

	reqs := make([]*domain.CalculationRequest, 0, len(cfg.VariantHours))
	for _, hours := range cfg.VariantHours {
		req, err := r.assemble(cfg, p, hours, ref)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func (r *Registry) assemble(cfg Config, p params, defaultHours decimal.Decimal, ref *refdata.ReferenceData) (*domain.CalculationRequest, error) {
	jurisdictionID, err := ref.JurisdictionForCity(p.citySlug)
	if err != nil {
		return nil, err
	}

	hours := defaultHours
	switch {
	case p.hoursPerWeek != nil:
		hours = *p.hoursPerWeek
	case len(p.shiftMix) > 0:
		// A mix without declared hours implies the mix total.
		hours = decimal.Zero
		for _, seg := range p.shiftMix {
			hours = hours.Add(seg.Hours)
		}
	}

	mix := p.shiftMix
	if len(mix) == 0 {
		mix = []domain.ShiftSegment{{RuleID: "regular", Hours: hours}}
	}
	for _, seg := range mix {
		if _, err := ref.Differential(seg.RuleID); err != nil {
			return nil, err
		}
	}

	req := &domain.CalculationRequest{
		ToolID:         cfg.ToolID,
		RoleID:         p.roleID,
		CitySlug:       p.citySlug,
		JurisdictionID: jurisdictionID,
		HoursPerWeek:   hours,
		ShiftMix:       mix,
		PointRate:      p.pointRate,
		IncludeTaxes:   cfg.IncludeTaxes,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}
