package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Billable cost item codes. The set is fixed reference data; quantities
// are derived for exactly these items.
const (
	ItemExcavate        = "EXCAVATE"
	ItemFill            = "FILL"
	ItemAsphaltLayer    = "ASPHALT_LAYER"
	ItemBaseLayer       = "BASE_LAYER"
	ItemSubbaseLayer    = "SUBBASE_LAYER"
	ItemDrainPipe       = "DRAIN_PIPE"
	ItemGuardRail       = "GUARD_RAIL"
	ItemTrafficSigns    = "TRAFFIC_SIGNS"
	ItemPavementMarking = "PAVEMENT_MARKING"

	// Synthetic markup item codes appended after direct costing
	ItemIndirect    = "INDIRECT"
	ItemContingency = "CONTINGENCY"
)

// Measurement units used by the cost item catalog
const (
	UnitCubicMetre = "m³"
	UnitMetre      = "m"
	UnitEach       = "each"
	UnitTon        = "ton"
	UnitLumpSum    = "LS"
)

// RateEntry is a unit rate for a material code in one region, valid for a
// window of time. Owned by the rate catalog.
type RateEntry struct {
	// Code is the material rate code (e.g. "ASPHALT")
	Code string `json:"code"`

	// Name is a human-readable material name
	Name string `json:"name"`

	// Unit is the billing unit for the rate
	Unit string `json:"unit"`

	// Rate is the monetary rate per unit
	Rate decimal.Decimal `json:"rate"`

	// Region is the region code the rate applies to
	Region string `json:"region"`

	// ValidFrom is the start of the validity window
	ValidFrom time.Time `json:"valid_from"`

	// ValidTo is the end of the validity window; nil means open-ended
	ValidTo *time.Time `json:"valid_to,omitempty"`
}

// ValidAt reports whether the rate's validity window covers t
func (r RateEntry) ValidAt(t time.Time) bool {
	return r.ValidTo == nil || !r.ValidTo.Before(t)
}

// RateSnapshot is the resolved {code → rate} mapping for one region,
// treated as a read-only snapshot for the duration of one estimate.
type RateSnapshot map[string]decimal.Decimal

// CostItemDef is the fixed definition of a billable cost item
type CostItemDef struct {
	// Code is the cost item code (e.g. "EXCAVATE")
	Code string `json:"code"`

	// Name is a human-readable item name
	Name string `json:"name"`

	// Description provides additional context
	Description string `json:"description,omitempty"`

	// Unit is the measurement unit for quantities of this item
	Unit string `json:"unit"`

	// Category is the aggregation category
	Category Category `json:"category"`

	// Subcategory is a free-form refinement within the category
	Subcategory string `json:"subcategory"`
}

// ItemCatalog is the resolved {code → definition} mapping, read-only for
// the duration of one estimate.
type ItemCatalog map[string]CostItemDef

// Quantity is a derived billable quantity for one cost item. Transient;
// never persisted.
type Quantity struct {
	// ItemCode references a CostItemDef
	ItemCode string `json:"item_code"`

	// Amount is the derived quantity, may be zero
	Amount decimal.Decimal `json:"quantity"`

	// Unit matches the catalog's declared unit for the item
	Unit string `json:"unit"`
}
