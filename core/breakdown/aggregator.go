// Package breakdown groups a cost ledger into the fixed category summary.
// This is the terminal core computation.
package breakdown

import (
	"github.com/shopspring/decimal"

	"roadcost/core/types"
)

var thousand = decimal.NewFromInt(1000)

// Aggregate groups the full ledger (direct and markup lines) by category
// and populates the fixed breakdown fields. Categories absent from the
// ledger yield zero, never a missing field. Total equals the sum of all
// category subtotals, which equals the sum of all line item costs.
func Aggregate(ledger *types.Ledger) types.Breakdown {
	subtotals := make(map[types.Category]decimal.Decimal, len(types.Categories()))
	for _, item := range ledger.Items {
		// Unknown labels fold into miscellaneous; untracked buckets
		// must not exist.
		c := item.Category
		if !c.Valid() {
			c = types.CategoryMiscellaneous
		}
		subtotals[c] = subtotals[c].Add(item.Cost)
	}

	var b types.Breakdown
	total := decimal.Zero
	for _, c := range types.Categories() {
		v := subtotals[c]
		b.SetSubtotal(c, v)
		total = total.Add(v)
	}
	b.Total = total
	return b
}

// CostPerKm divides the estimate total by the road length in kilometres.
// A zero road length yields zero by definition rather than an error or
// infinity.
func CostPerKm(total, roadLengthMetres decimal.Decimal) decimal.Decimal {
	if roadLengthMetres.IsZero() {
		return decimal.Zero
	}
	return total.Div(roadLengthMetres.Div(thousand))
}
