package report

import (
	"encoding/json"
	"io"

	"roadcost/core/estimate"
	"roadcost/core/types"
)

// JSONWriter renders the full estimate as machine-readable JSON
type JSONWriter struct{}

// jsonReport is the serialized report shape
type jsonReport struct {
	ProjectID   string           `json:"project_id"`
	AlignmentID string           `json:"alignment_id"`
	RoadLength  float64          `json:"road_length_m"`
	TotalCost   float64          `json:"total_cost"`
	CostPerKm   float64          `json:"cost_per_km"`
	Items       []types.LineItem `json:"items"`
	Breakdown   types.Breakdown  `json:"breakdown"`
	Warnings    []types.Warning  `json:"warnings,omitempty"`
}

// Format implements Writer
func (w *JSONWriter) Format() Format { return FormatJSON }

// Extension implements Writer
func (w *JSONWriter) Extension() string { return "json" }

// Render implements Writer
func (w *JSONWriter) Render(out io.Writer, result *estimate.Result) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		ProjectID:   result.ProjectID,
		AlignmentID: result.AlignmentID,
		RoadLength:  result.RoadLength.InexactFloat64(),
		TotalCost:   result.TotalCost.InexactFloat64(),
		CostPerKm:   result.CostPerKm.InexactFloat64(),
		Items:       result.Ledger.Items,
		Breakdown:   result.Breakdown,
		Warnings:    result.Warnings,
	})
}
