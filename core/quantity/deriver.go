// Package quantity derives billable quantities from volume intervals.
// This is the first core pipeline stage: a pure function from an ordered
// interval sequence to a fixed set of Quantity records.
package quantity

import (
	"github.com/shopspring/decimal"

	"roadcost/core/types"
	"roadcost/internal/errors"
)

// Coverage assumptions for length-derived items: 50% drainage coverage,
// 30% guardrail coverage, one sign per 200 m, 3 painted lines.
var (
	drainCoverage     = decimal.NewFromFloat(0.5)
	guardRailCoverage = decimal.NewFromFloat(0.3)
	signSpacingMetres = decimal.NewFromInt(200)
	markingLines      = decimal.NewFromInt(3)
)

// Result is the output of quantity derivation
type Result struct {
	// Quantities holds one record per billable item
	Quantities []types.Quantity

	// RoadLength is (max station_end − min station_start) in metres
	RoadLength decimal.Decimal
}

// Derive converts an ordered sequence of volume intervals into the fixed
// set of billable quantities. Volumetric items are summed across all
// intervals with a running sum; length-derived items use the total road
// length. An empty sequence is insufficient data: road length would be
// undefined, so the derivation fails rather than producing a zero
// estimate.
func Derive(intervals []types.VolumeInterval) (*Result, error) {
	if len(intervals) == 0 {
		return nil, errors.InsufficientData("no volume intervals: road length is undefined")
	}
	if err := types.ValidateIntervals(intervals); err != nil {
		return nil, err
	}

	var cut, fill, pavement, base, subbase decimal.Decimal
	minStart := intervals[0].StationStart
	maxEnd := intervals[0].StationEnd

	for _, iv := range intervals {
		cut = cut.Add(decimal.NewFromFloat(iv.CutVolume))
		fill = fill.Add(decimal.NewFromFloat(iv.FillVolume))
		pavement = pavement.Add(decimal.NewFromFloat(iv.PavementVolume))
		base = base.Add(decimal.NewFromFloat(iv.BaseVolume))
		subbase = subbase.Add(decimal.NewFromFloat(iv.SubbaseVolume))

		if iv.StationStart < minStart {
			minStart = iv.StationStart
		}
		if iv.StationEnd > maxEnd {
			maxEnd = iv.StationEnd
		}
	}

	length := decimal.NewFromFloat(maxEnd).Sub(decimal.NewFromFloat(minStart))

	quantities := []types.Quantity{
		{ItemCode: types.ItemExcavate, Amount: cut, Unit: types.UnitCubicMetre},
		{ItemCode: types.ItemFill, Amount: fill, Unit: types.UnitCubicMetre},
		{ItemCode: types.ItemAsphaltLayer, Amount: pavement, Unit: types.UnitCubicMetre},
		{ItemCode: types.ItemBaseLayer, Amount: base, Unit: types.UnitCubicMetre},
		{ItemCode: types.ItemSubbaseLayer, Amount: subbase, Unit: types.UnitCubicMetre},
		{ItemCode: types.ItemDrainPipe, Amount: length.Mul(drainCoverage), Unit: types.UnitMetre},
		{ItemCode: types.ItemGuardRail, Amount: length.Mul(guardRailCoverage), Unit: types.UnitMetre},
		// Fractional sign counts are allowed; rounding is a report-layer concern.
		{ItemCode: types.ItemTrafficSigns, Amount: length.Div(signSpacingMetres), Unit: types.UnitEach},
		{ItemCode: types.ItemPavementMarking, Amount: length.Mul(markingLines), Unit: types.UnitMetre},
	}

	return &Result{
		Quantities: quantities,
		RoadLength: length,
	}, nil
}
