// Package costing prices derived quantities into a cost ledger.
// The package contains two stages: direct costing (Calculate) and markup
// application (ApplyMarkup).
package costing

import (
	"fmt"

	"go.uber.org/zap"

	"roadcost/core/types"
	"roadcost/internal/errors"
	"roadcost/internal/logging"
)

// itemRateCodes binds each billable item to exactly one material rate
// code. This mapping is a static design constant, not configurable per
// request.
var itemRateCodes = map[string]string{
	types.ItemExcavate:        "EXCAVATION",
	types.ItemFill:            "EMBANKMENT",
	types.ItemAsphaltLayer:    "ASPHALT",
	types.ItemBaseLayer:       "AGGBASE",
	types.ItemSubbaseLayer:    "SUBBASE",
	types.ItemDrainPipe:       "DRAINAGE_PIPE",
	types.ItemGuardRail:       "GUARDRAIL",
	types.ItemTrafficSigns:    "SIGNS",
	types.ItemPavementMarking: "STRIPING",
}

// RateCodeFor returns the material rate code bound to an item code
func RateCodeFor(itemCode string) (string, bool) {
	code, ok := itemRateCodes[itemCode]
	return code, ok
}

// Calculate joins quantities against a rate snapshot and the item catalog
// to produce a ledger of direct-cost line items. A quantity whose rate
// code or item code is missing from the reference data is skipped and a
// warning recorded; the estimate still completes while at least one line
// survives. If zero lines survive the error escalates to EMPTY_LEDGER.
func Calculate(quantities []types.Quantity, rates types.RateSnapshot, items types.ItemCatalog) (*types.Ledger, []types.Warning, error) {
	ledger := &types.Ledger{}
	var warnings []types.Warning

	for _, q := range quantities {
		rateCode, ok := itemRateCodes[q.ItemCode]
		if !ok {
			warnings = append(warnings, skip(q.ItemCode, "", "no rate code mapping for item"))
			continue
		}

		rate, ok := rates[rateCode]
		if !ok {
			warnings = append(warnings, skip(q.ItemCode, rateCode, fmt.Sprintf("rate %s not found in region snapshot", rateCode)))
			continue
		}

		item, ok := items[q.ItemCode]
		if !ok {
			warnings = append(warnings, skip(q.ItemCode, rateCode, "cost item not found in catalog"))
			continue
		}

		ledger.Append(types.NewLineItem(item, q.Amount, rate))
	}

	if ledger.Len() == 0 {
		return nil, warnings, errors.EmptyLedger("no line items survived costing: reference data is missing for every quantity")
	}

	return ledger, warnings, nil
}

func skip(itemCode, rateCode, reason string) types.Warning {
	logging.Warn("skipping line item",
		zap.String("item_code", itemCode),
		zap.String("rate_code", rateCode),
		zap.String("reason", reason),
	)
	return types.Warning{ItemCode: itemCode, RateCode: rateCode, Reason: reason}
}
