package output

import (
	"encoding/json"
	"fmt"

	"github.com/qcfin/qcsim/internal/domain"
)

// JSONRenderer renders a simulation result as indented JSON.
type JSONRenderer struct{}

// Name implements domain.ReportRenderer.
func (JSONRenderer) Name() string { return "json" }

// Render implements domain.ReportRenderer.
func (JSONRenderer) Render(result *domain.SimulationResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("nothing to render: simulation produced no result")
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return append(data, '\n'), nil
}
