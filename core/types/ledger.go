package types

import (
	"github.com/shopspring/decimal"
)

// LineItem is the atomic unit of the cost ledger. Cost is always
// Quantity × UnitRate; construct line items with NewLineItem so the
// product invariant cannot be broken.
type LineItem struct {
	// ItemCode references the cost item
	ItemCode string `json:"item_code"`

	// ItemName is the catalog name of the item
	ItemName string `json:"item_name"`

	// Category is the aggregation category
	Category Category `json:"category"`

	// Subcategory refines the category
	Subcategory string `json:"subcategory"`

	// Quantity is the billed quantity
	Quantity decimal.Decimal `json:"quantity"`

	// Unit is the billing unit
	Unit string `json:"unit"`

	// UnitRate is the monetary rate per unit
	UnitRate decimal.Decimal `json:"unit_rate"`

	// Cost is Quantity × UnitRate, never independently set
	Cost decimal.Decimal `json:"cost"`
}

// NewLineItem builds a line item with the cost product invariant applied
func NewLineItem(item CostItemDef, quantity, unitRate decimal.Decimal) LineItem {
	return LineItem{
		ItemCode:    item.Code,
		ItemName:    item.Name,
		Category:    item.Category,
		Subcategory: item.Subcategory,
		Quantity:    quantity,
		Unit:        item.Unit,
		UnitRate:    unitRate,
		Cost:        quantity.Mul(unitRate),
	}
}

// Ledger is the ordered collection of priced line items composing one
// estimate. Append-only during construction: direct items first, then
// markup items.
type Ledger struct {
	// Items holds the line items in append order
	Items []LineItem `json:"items"`
}

// Append adds a line item to the ledger
func (l *Ledger) Append(item LineItem) {
	l.Items = append(l.Items, item)
}

// Len returns the number of line items
func (l *Ledger) Len() int {
	return len(l.Items)
}

// Total returns the sum of all line item costs
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l.Items {
		total = total.Add(item.Cost)
	}
	return total
}

// DirectSubtotal returns the sum of costs excluding markup lines. Markups
// are computed on direct costs only, never compounding on each other.
func (l *Ledger) DirectSubtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l.Items {
		if item.ItemCode == ItemIndirect || item.ItemCode == ItemContingency {
			continue
		}
		total = total.Add(item.Cost)
	}
	return total
}

// Breakdown is the fixed-schema cost summary by category. Every category
// field is always populated; absent categories are zero.
type Breakdown struct {
	Earthworks     decimal.Decimal `json:"earthworks"`
	Pavement       decimal.Decimal `json:"pavement"`
	Drainage       decimal.Decimal `json:"drainage"`
	Structures     decimal.Decimal `json:"structures"`
	TrafficControl decimal.Decimal `json:"traffic_control"`
	Landscaping    decimal.Decimal `json:"landscaping"`
	Miscellaneous  decimal.Decimal `json:"miscellaneous"`
	IndirectCosts  decimal.Decimal `json:"indirect_costs"`
	Contingency    decimal.Decimal `json:"contingency"`

	// Total is the sum of all category subtotals
	Total decimal.Decimal `json:"total"`
}

// Subtotal returns the subtotal for a category
func (b *Breakdown) Subtotal(c Category) decimal.Decimal {
	switch c {
	case CategoryEarthworks:
		return b.Earthworks
	case CategoryPavement:
		return b.Pavement
	case CategoryDrainage:
		return b.Drainage
	case CategoryStructures:
		return b.Structures
	case CategoryTrafficControl:
		return b.TrafficControl
	case CategoryLandscaping:
		return b.Landscaping
	case CategoryMiscellaneous:
		return b.Miscellaneous
	case CategoryIndirectCosts:
		return b.IndirectCosts
	case CategoryContingency:
		return b.Contingency
	}
	return decimal.Zero
}

// SetSubtotal sets the subtotal for a category
func (b *Breakdown) SetSubtotal(c Category, v decimal.Decimal) {
	switch c {
	case CategoryEarthworks:
		b.Earthworks = v
	case CategoryPavement:
		b.Pavement = v
	case CategoryDrainage:
		b.Drainage = v
	case CategoryStructures:
		b.Structures = v
	case CategoryTrafficControl:
		b.TrafficControl = v
	case CategoryLandscaping:
		b.Landscaping = v
	case CategoryMiscellaneous:
		b.Miscellaneous = v
	case CategoryIndirectCosts:
		b.IndirectCosts = v
	case CategoryContingency:
		b.Contingency = v
	}
}

// Warning records a non-fatal costing omission: a quantity whose rate code
// or item code was absent from the reference data. Warnings are surfaced
// to the caller, never silently discarded.
type Warning struct {
	// ItemCode is the affected cost item
	ItemCode string `json:"item_code"`

	// RateCode is the rate code that was looked up, if any
	RateCode string `json:"rate_code,omitempty"`

	// Reason explains why the line was dropped
	Reason string `json:"reason"`
}
