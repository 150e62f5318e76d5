// Package estimate orchestrates the cost estimation pipeline:
// volumes → quantities → direct costs → markup → breakdown.
// Each stage is a pure transformation over read-only snapshots, so any
// number of estimates may run concurrently.
package estimate

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"roadcost/catalog"
	"roadcost/core/breakdown"
	"roadcost/core/costing"
	"roadcost/core/quantity"
	"roadcost/core/types"
	"roadcost/internal/errors"
	"roadcost/internal/logging"
	"roadcost/volume"
)

// Request carries the parameters for one estimate
type Request struct {
	// ProjectID identifies the project
	ProjectID string

	// AlignmentID identifies the alignment within the project
	AlignmentID string

	// Region selects the rate region
	Region string

	// ContingencyPercentage is the contingency markup, ≥ 0
	ContingencyPercentage float64

	// IncludeIndirectCosts controls whether markup lines are appended
	IncludeIndirectCosts bool

	// IndirectCostPercentage is the indirect-cost markup, ≥ 0
	IndirectCostPercentage float64
}

// Validate checks the request against the input contract
func (r *Request) Validate() error {
	if r.ProjectID == "" {
		return errors.Validation("project_id is required")
	}
	if r.AlignmentID == "" {
		return errors.Validation("alignment_id is required")
	}
	if r.ContingencyPercentage < 0 {
		return errors.Validationf("contingency_percentage must be non-negative, got %.2f", r.ContingencyPercentage)
	}
	if r.IndirectCostPercentage < 0 {
		return errors.Validationf("indirect_cost_percentage must be non-negative, got %.2f", r.IndirectCostPercentage)
	}
	return nil
}

// Result is the computed estimate, independent of any report rendering
type Result struct {
	// ProjectID echoes the request
	ProjectID string

	// AlignmentID echoes the request
	AlignmentID string

	// RoadLength is the alignment length in metres
	RoadLength decimal.Decimal

	// Ledger holds the priced line items in append order
	Ledger *types.Ledger

	// Breakdown is the category summary
	Breakdown types.Breakdown

	// TotalCost equals Breakdown.Total
	TotalCost decimal.Decimal

	// CostPerKm is TotalCost over road length in km, zero when length is zero
	CostPerKm decimal.Decimal

	// Warnings lists non-fatal reference-data omissions
	Warnings []types.Warning
}

// Estimator runs the estimation pipeline against injected collaborators
type Estimator struct {
	rates  catalog.RateCatalog
	items  catalog.CostItemCatalog
	source volume.Source
}

// New creates an estimator
func New(rates catalog.RateCatalog, items catalog.CostItemCatalog, source volume.Source) *Estimator {
	return &Estimator{
		rates:  rates,
		items:  items,
		source: source,
	}
}

// Estimate produces a complete cost estimate for one alignment. Reference
// data is read once into snapshots; every subsequent stage is pure, so
// identical inputs always yield identical results.
func (e *Estimator) Estimate(ctx context.Context, req *Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	region := req.Region
	if region == "" {
		region = "default"
	}

	rates, err := e.rates.Rates(ctx, region)
	if err != nil {
		return nil, errors.Storage("loading rate snapshot", err).WithContext("region", region)
	}

	items, err := e.items.Items(ctx)
	if err != nil {
		return nil, errors.Storage("loading cost item catalog", err)
	}

	intervals, err := e.source.Volumes(ctx, req.ProjectID, req.AlignmentID)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInternal, "fetching volumes", err).
			WithContext("project_id", req.ProjectID).
			WithContext("alignment_id", req.AlignmentID)
	}

	derived, err := quantity.Derive(intervals)
	if err != nil {
		return nil, err
	}

	ledger, warnings, err := costing.Calculate(derived.Quantities, rates, items)
	if err != nil {
		return nil, err
	}

	if req.IncludeIndirectCosts {
		if err := costing.ApplyMarkup(ledger, req.IndirectCostPercentage, req.ContingencyPercentage); err != nil {
			return nil, err
		}
	}

	bd := breakdown.Aggregate(ledger)

	result := &Result{
		ProjectID:   req.ProjectID,
		AlignmentID: req.AlignmentID,
		RoadLength:  derived.RoadLength,
		Ledger:      ledger,
		Breakdown:   bd,
		TotalCost:   bd.Total,
		CostPerKm:   breakdown.CostPerKm(bd.Total, derived.RoadLength),
		Warnings:    warnings,
	}

	logging.Info("estimate complete",
		zap.String("project_id", req.ProjectID),
		zap.String("alignment_id", req.AlignmentID),
		zap.String("total_cost", result.TotalCost.StringFixed(2)),
		zap.Int("line_items", ledger.Len()),
		zap.Int("warnings", len(warnings)),
	)

	return result, nil
}
