package api

import (
	"github.com/hirepath/earnings-engine/internal/domain"
	"github.com/hirepath/earnings-engine/internal/preset"
)

// Money crosses the wire as fixed two-decimal strings so browser
// consumers never see float artifacts.

type toolDTO struct {
	ID           string   `json:"id"`
	Description  string   `json:"description"`
	DefaultHours string   `json:"defaultHours"`
	VariantHours []string `json:"variantHours,omitempty"`
	IncludeTaxes bool     `json:"includeTaxes"`
}

type roleDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Industry string `json:"industry"`
	BaseMin  string `json:"baseMin"`
	BaseMax  string `json:"baseMax"`
}

type cityDTO struct {
	Slug              string `json:"slug"`
	Name              string `json:"name"`
	State             string `json:"state"`
	CostOfLivingIndex string `json:"costOfLivingIndex"`
}

type differentialDTO struct {
	ID         string `json:"id"`
	AppliesTo  string `json:"appliesTo"`
	Multiplier string `json:"multiplier,omitempty"`
	AddOn      string `json:"addOn,omitempty"`
}

type taxLineDTO struct {
	Jurisdiction string `json:"jurisdiction"`
	Amount       string `json:"amount"`
}

type resultDTO struct {
	ToolID       string       `json:"toolId"`
	RoleID       string       `json:"roleId"`
	CitySlug     string       `json:"citySlug"`
	HoursPerWeek string       `json:"hoursPerWeek"`
	LocalizedMin string       `json:"localizedMin"`
	LocalizedMax string       `json:"localizedMax"`
	HourlyRate   string       `json:"hourlyRate"`
	GrossWeekly  string       `json:"grossWeekly"`
	GrossAnnual  string       `json:"grossAnnual"`
	TaxBreakdown []taxLineDTO `json:"taxBreakdown"`
	TotalTax     string       `json:"totalTax"`
	NetWeekly    string       `json:"netWeekly"`
	NetAnnual    string       `json:"netAnnual"`
}

type errorDTO struct {
	Error string `json:"error"`
}

func toToolDTO(cfg preset.Config) toolDTO {
	dto := toolDTO{
		ID:           cfg.ToolID,
		Description:  cfg.Description,
		DefaultHours: cfg.DefaultHours.String(),
		IncludeTaxes: cfg.IncludeTaxes,
	}
	for _, h := range cfg.VariantHours {
		dto.VariantHours = append(dto.VariantHours, h.String())
	}
	return dto
}

func toRoleDTO(role domain.RoleWageProfile) roleDTO {
	return roleDTO{
		ID:       role.ID,
		Title:    role.Title,
		Industry: role.Industry,
		BaseMin:  role.BaseHourlyRange.Min.StringFixed(2),
		BaseMax:  role.BaseHourlyRange.Max.StringFixed(2),
	}
}

func toCityDTO(city domain.CityCostProfile) cityDTO {
	return cityDTO{
		Slug:              city.Slug,
		Name:              city.Name,
		State:             city.State,
		CostOfLivingIndex: city.CostOfLivingIndex.String(),
	}
}

func toDifferentialDTO(rule domain.ShiftDifferentialRule) differentialDTO {
	dto := differentialDTO{ID: rule.ID, AppliesTo: rule.AppliesTo}
	if rule.AddOn.IsPositive() {
		dto.AddOn = rule.AddOn.StringFixed(2)
	} else {
		dto.Multiplier = rule.Multiplier.String()
	}
	return dto
}

func toResultDTO(res *domain.CalculationResult) resultDTO {
	dto := resultDTO{
		ToolID:       res.ToolID,
		RoleID:       res.RoleID,
		CitySlug:     res.CitySlug,
		HoursPerWeek: res.HoursPerWeek.String(),
		LocalizedMin: res.LocalizedHourlyRange.Min.StringFixed(2),
		LocalizedMax: res.LocalizedHourlyRange.Max.StringFixed(2),
		HourlyRate:   res.HourlyRate.StringFixed(2),
		GrossWeekly:  res.GrossWeekly.StringFixed(2),
		GrossAnnual:  res.GrossAnnual.StringFixed(2),
		TaxBreakdown: make([]taxLineDTO, 0, len(res.TaxBreakdown)),
		TotalTax:     res.TotalTax().StringFixed(2),
		NetWeekly:    res.NetWeekly.StringFixed(2),
		NetAnnual:    res.NetAnnual.StringFixed(2),
	}
	for _, line := range res.TaxBreakdown {
		dto.TaxBreakdown = append(dto.TaxBreakdown, taxLineDTO{
			Jurisdiction: line.JurisdictionLabel,
			Amount:       line.Amount.StringFixed(2),
		})
	}
	return dto
}

func toResultDTOs(results []*domain.CalculationResult) []resultDTO {
	dtos := make([]resultDTO, 0, len(results))
	for _, res := range results {
		dtos = append(dtos, toResultDTO(res))
	}
	return dtos
}
