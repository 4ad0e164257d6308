package output

import (
	"github.com/goccy/go-json"

	"github.com/hirepath/earnings-engine/internal/domain"
)

// JSONFormatter renders results as JSON.
type JSONFormatter struct {
	Pretty bool
}

// Name implements Formatter.
func (jf *JSONFormatter) Name() string { return "json" }

// Format implements Formatter.
func (jf *JSONFormatter) Format(results []*domain.CalculationResult) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(results, "", "  ")
	}
	return json.Marshal(results)
}
