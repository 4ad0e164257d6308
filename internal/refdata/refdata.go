// Package refdata loads and holds the engine's immutable reference
// tables: role wage profiles, city cost profiles, tax jurisdiction
// schedules and shift differential rules. Tables are loaded once per
// process, validated eagerly, and injected into the engine; nothing
// here mutates after construction.
package refdata

import (
	"fmt"
	"sort"

	"github.com/hirepath/earnings-engine/internal/domain"
)

// ReferenceData is the injected bundle of all reference tables.
type ReferenceData struct {
	roles         map[string]domain.RoleWageProfile
	cities        map[string]domain.CityCostProfile
	jurisdictions map[string]domain.TaxJurisdiction
	differentials map[string]domain.ShiftDifferentialRule
	overtime      domain.OvertimeRule
}

// New builds a bundle from explicit tables, validating every entry.
// Tests use this to run the engine against synthetic jurisdictions.
func New(
	roles []domain.RoleWageProfile,
	cities []domain.CityCostProfile,
	jurisdictions []domain.TaxJurisdiction,
	differentials []domain.ShiftDifferentialRule,
	overtime domain.OvertimeRule,
) (*ReferenceData, error) {
	rd := &ReferenceData{
		roles:         make(map[string]domain.RoleWageProfile, len(roles)),
		cities:        make(map[string]domain.CityCostProfile, len(cities)),
		jurisdictions: make(map[string]domain.TaxJurisdiction, len(jurisdictions)),
		differentials: make(map[string]domain.ShiftDifferentialRule, len(differentials)),
		overtime:      overtime,
	}

	for _, r := range roles {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := rd.roles[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate role id %s", domain.ErrInvalidProfile, r.ID)
		}
		rd.roles[r.ID] = r
	}
	for _, c := range cities {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, dup := rd.cities[c.Slug]; dup {
			return nil, fmt.Errorf("%w: duplicate city slug %s", domain.ErrInvalidProfile, c.Slug)
		}
		rd.cities[c.Slug] = c
	}
	for _, j := range jurisdictions {
		if err := j.Validate(); err != nil {
			return nil, err
		}
		if _, dup := rd.jurisdictions[j.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate jurisdiction id %s", domain.ErrInvalidProfile, j.ID)
		}
		rd.jurisdictions[j.ID] = j
	}
	for _, dr := range differentials {
		if err := dr.Validate(); err != nil {
			return nil, err
		}
		if _, dup := rd.differentials[dr.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate differential rule id %s", domain.ErrInvalidProfile, dr.ID)
		}
		rd.differentials[dr.ID] = dr
	}
	if err := overtime.Validate(); err != nil {
		return nil, err
	}

	// Cross-table checks: every city must map to a loaded state
	// jurisdiction, and the federal table must exist.
	if _, ok := rd.jurisdictions[domain.JurisdictionFederal]; !ok {
		return nil, fmt.Errorf("%w: federal jurisdiction table is required", domain.ErrInvalidProfile)
	}
	for _, c := range rd.cities {
		if _, ok := rd.jurisdictions[c.State]; !ok {
			return nil, fmt.Errorf("%w: city %s references state %s with no jurisdiction table",
				domain.ErrInvalidProfile, c.Slug, c.State)
		}
	}

	return rd, nil
}

// Role returns the wage profile for a role id.
func (rd *ReferenceData) Role(id string) (domain.RoleWageProfile, error) {
	r, ok := rd.roles[id]
	if !ok {
		return domain.RoleWageProfile{}, fmt.Errorf("%w: %s", domain.ErrUnknownRole, id)
	}
	return r, nil
}

// City returns the cost profile for a city slug.
func (rd *ReferenceData) City(slug string) (domain.CityCostProfile, error) {
	c, ok := rd.cities[slug]
	if !ok {
		return domain.CityCostProfile{}, fmt.Errorf("%w: %s", domain.ErrUnknownCity, slug)
	}
	return c, nil
}

// Jurisdiction returns the tax table for a jurisdiction id.
func (rd *ReferenceData) Jurisdiction(id string) (domain.TaxJurisdiction, error) {
	j, ok := rd.jurisdictions[id]
	if !ok {
		return domain.TaxJurisdiction{}, fmt.Errorf("%w: %s", domain.ErrUnknownJurisdiction, id)
	}
	return j, nil
}

// JurisdictionForCity resolves a city slug to its state jurisdiction id.
func (rd *ReferenceData) JurisdictionForCity(slug string) (string, error) {
	c, ok := rd.cities[slug]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownCity, slug)
	}
	return c.State, nil
}

// Differential returns the shift differential rule for a rule id.
func (rd *ReferenceData) Differential(id string) (domain.ShiftDifferentialRule, error) {
	dr, ok := rd.differentials[id]
	if !ok {
		return domain.ShiftDifferentialRule{}, fmt.Errorf("%w: %s", domain.ErrUnknownDifferential, id)
	}
	return dr, nil
}

// Overtime returns the weekly overtime rule.
func (rd *ReferenceData) Overtime() domain.OvertimeRule {
	return rd.overtime
}

// Roles returns all role profiles sorted by id.
func (rd *ReferenceData) Roles() []domain.RoleWageProfile {
	out := make([]domain.RoleWageProfile, 0, len(rd.roles))
	for _, r := range rd.roles {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Cities returns all city profiles sorted by slug.
func (rd *ReferenceData) Cities() []domain.CityCostProfile {
	out := make([]domain.CityCostProfile, 0, len(rd.cities))
	for _, c := range rd.cities {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// Differentials returns all differential rules sorted by id.
func (rd *ReferenceData) Differentials() []domain.ShiftDifferentialRule {
	out := make([]domain.ShiftDifferentialRule, 0, len(rd.differentials))
	for _, dr := range rd.differentials {
		out = append(out, dr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
