// Package api - wire types for the estimation API
package api

import (
	"roadcost/core/estimate"
	"roadcost/core/types"
)

// EstimateRequest is the request body for POST /estimate
type EstimateRequest struct {
	// ProjectID identifies the project
	ProjectID string `json:"project_id"`

	// AlignmentID identifies the alignment
	AlignmentID string `json:"alignment_id"`

	// Region selects the rate region; defaults to "default"
	Region string `json:"region,omitempty"`

	// ContingencyPercentage defaults to 15.0
	ContingencyPercentage *float64 `json:"contingency_percentage,omitempty"`

	// IncludeIndirectCosts defaults to true
	IncludeIndirectCosts *bool `json:"include_indirect_costs,omitempty"`

	// IndirectCostPercentage defaults to 25.0
	IndirectCostPercentage *float64 `json:"indirect_cost_percentage,omitempty"`

	// ReportFormat is one of csv/excel/pdf/json; defaults to excel
	ReportFormat string `json:"report_format,omitempty"`
}

// BreakdownPayload is the fixed-schema category summary on the wire
type BreakdownPayload struct {
	Earthworks     float64 `json:"earthworks"`
	Pavement       float64 `json:"pavement"`
	Drainage       float64 `json:"drainage"`
	Structures     float64 `json:"structures"`
	TrafficControl float64 `json:"traffic_control"`
	Landscaping    float64 `json:"landscaping"`
	Miscellaneous  float64 `json:"miscellaneous"`
	IndirectCosts  float64 `json:"indirect_costs"`
	Contingency    float64 `json:"contingency"`
	Total          float64 `json:"total"`
}

// ResponseMetadata carries execution context for one estimate
type ResponseMetadata struct {
	// RequestID identifies this request in logs
	RequestID string `json:"request_id"`

	// DurationMs is the request duration in milliseconds
	DurationMs int64 `json:"duration_ms"`

	// EngineVersion is the service version
	EngineVersion string `json:"engine_version"`
}

// EstimateResponse is the response body for POST /estimate. Totals are
// always populated when the estimate succeeds, even when report
// rendering fails; a render failure is reported in RenderError.
type EstimateResponse struct {
	ProjectID   string           `json:"project_id"`
	AlignmentID string           `json:"alignment_id"`
	TotalCost   float64          `json:"total_cost"`
	CostPerKm   float64          `json:"cost_per_km"`
	Breakdown   BreakdownPayload `json:"breakdown"`
	ReportURL   string           `json:"report_url,omitempty"`
	RenderError string           `json:"render_error,omitempty"`
	Warnings    []types.Warning  `json:"warnings,omitempty"`
	Metadata    ResponseMetadata `json:"metadata"`
}

// toBreakdownPayload converts the decimal breakdown to wire floats
func toBreakdownPayload(b types.Breakdown) BreakdownPayload {
	return BreakdownPayload{
		Earthworks:     b.Earthworks.InexactFloat64(),
		Pavement:       b.Pavement.InexactFloat64(),
		Drainage:       b.Drainage.InexactFloat64(),
		Structures:     b.Structures.InexactFloat64(),
		TrafficControl: b.TrafficControl.InexactFloat64(),
		Landscaping:    b.Landscaping.InexactFloat64(),
		Miscellaneous:  b.Miscellaneous.InexactFloat64(),
		IndirectCosts:  b.IndirectCosts.InexactFloat64(),
		Contingency:    b.Contingency.InexactFloat64(),
		Total:          b.Total.InexactFloat64(),
	}
}

// toEstimateRequest applies wire defaults and builds the core request
func (r *EstimateRequest) toEstimateRequest() *estimate.Request {
	req := &estimate.Request{
		ProjectID:              r.ProjectID,
		AlignmentID:            r.AlignmentID,
		Region:                 r.Region,
		ContingencyPercentage:  15.0,
		IncludeIndirectCosts:   true,
		IndirectCostPercentage: 25.0,
	}
	if r.Region == "" {
		req.Region = "default"
	}
	if r.ContingencyPercentage != nil {
		req.ContingencyPercentage = *r.ContingencyPercentage
	}
	if r.IncludeIndirectCosts != nil {
		req.IncludeIndirectCosts = *r.IncludeIndirectCosts
	}
	if r.IndirectCostPercentage != nil {
		req.IndirectCostPercentage = *r.IndirectCostPercentage
	}
	return req
}
