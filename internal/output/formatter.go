// Package output renders calculation results for the CLI. The table
// formatter is the human-facing default; json and csv exist for
// piping results into the content build.
package output

import (
	"github.com/hirepath/earnings-engine/internal/domain"
)

// Formatter renders one or more calculation results (a tool may
// produce side-by-side hour variants) into a byte stream.
type Formatter interface {
	Name() string
	Format(results []*domain.CalculationResult) ([]byte, error)
}

// GetFormatterByName returns the formatter for a name, or nil if the
// name is not recognized.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "table", "":
		return &TableFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	case "csv":
		return &CSVFormatter{}
	default:
		return nil
	}
}
