package costing

import (
	"github.com/shopspring/decimal"

	"roadcost/core/types"
	"roadcost/internal/errors"
)

var hundred = decimal.NewFromInt(100)

// markup item definitions; these never come from the catalog
var (
	indirectItem = types.CostItemDef{
		Code:        types.ItemIndirect,
		Name:        "Indirect Costs",
		Unit:        types.UnitLumpSum,
		Category:    types.CategoryIndirectCosts,
		Subcategory: "overhead",
	}
	contingencyItem = types.CostItemDef{
		Code:        types.ItemContingency,
		Name:        "Contingency",
		Unit:        types.UnitLumpSum,
		Category:    types.CategoryContingency,
		Subcategory: "risk",
	}
)

// ApplyMarkup appends the INDIRECT and CONTINGENCY line items to a ledger
// of direct costs. Both markups are computed from the direct subtotal as
// it stands before either is appended, so they never compound on each
// other. Applying markup is at the caller's discretion; a request may opt
// out entirely.
func ApplyMarkup(ledger *types.Ledger, indirectPct, contingencyPct float64) error {
	if indirectPct < 0 {
		return errors.Validationf("indirect_cost_percentage must be non-negative, got %.2f", indirectPct)
	}
	if contingencyPct < 0 {
		return errors.Validationf("contingency_percentage must be non-negative, got %.2f", contingencyPct)
	}

	direct := ledger.DirectSubtotal()

	indirect := direct.Mul(decimal.NewFromFloat(indirectPct)).Div(hundred)
	contingency := direct.Mul(decimal.NewFromFloat(contingencyPct)).Div(hundred)

	// Markup lines carry quantity 1 with the computed cost as the unit
	// rate, keeping the cost product invariant intact.
	ledger.Append(types.NewLineItem(indirectItem, decimal.NewFromInt(1), indirect))
	ledger.Append(types.NewLineItem(contingencyItem, decimal.NewFromInt(1), contingency))

	return nil
}
