package refdata

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hirepath/earnings-engine/internal/domain"
)

//go:embed data/*.yaml
var defaultData embed.FS

// File names expected in a reference data directory.
const (
	rolesFile         = "roles.yaml"
	citiesFile        = "cities.yaml"
	jurisdictionsFile = "jurisdictions.yaml"
	differentialsFile = "differentials.yaml"
)

type rolesDoc struct {
	Roles []domain.RoleWageProfile `yaml:"roles"`
}

type citiesDoc struct {
	Cities []domain.CityCostProfile `yaml:"cities"`
}

type jurisdictionsDoc struct {
	Jurisdictions []domain.TaxJurisdiction `yaml:"jurisdictions"`
}

type differentialsDoc struct {
	Differentials []domain.ShiftDifferentialRule `yaml:"differentials"`
	Overtime      domain.OvertimeRule            `yaml:"overtime"`
}

// Load reads the four reference tables from a directory of YAML files
// and returns a validated bundle.
func Load(dir string) (*ReferenceData, error) {
	return loadFS(os.DirFS(dir))
}

// LoadDefault returns the bundle built from the dataset embedded in
// the binary. It never fails at runtime; the embedded tables are
// validated by the package tests.
func LoadDefault() (*ReferenceData, error) {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		return nil, err
	}
	return loadFS(sub)
}

func loadFS(fsys fs.FS) (*ReferenceData, error) {
	var roles rolesDoc
	if err := readYAML(fsys, rolesFile, &roles); err != nil {
		return nil, err
	}
	var cities citiesDoc
	if err := readYAML(fsys, citiesFile, &cities); err != nil {
		return nil, err
	}
	var jurisdictions jurisdictionsDoc
	if err := readYAML(fsys, jurisdictionsFile, &jurisdictions); err != nil {
		return nil, err
	}
	var differentials differentialsDoc
	if err := readYAML(fsys, differentialsFile, &differentials); err != nil {
		return nil, err
	}

	overtime := differentials.Overtime
	if overtime.ThresholdHours.IsZero() && overtime.Multiplier.IsZero() {
		overtime = domain.DefaultOvertimeRule()
	}

	rd, err := New(roles.Roles, cities.Cities, jurisdictions.Jurisdictions, differentials.Differentials, overtime)
	if err != nil {
		return nil, fmt.Errorf("reference data validation failed: %w", err)
	}
	return rd, nil
}

func readYAML(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, filepath.ToSlash(name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
