package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"roadcost/core/types"
)

// DefaultRates returns the built-in material rates for the "default"
// region, all valid from now with an open-ended window.
func DefaultRates() []types.RateEntry {
	now := time.Now()
	rate := func(code, name, unit string, value float64) types.RateEntry {
		return types.RateEntry{
			Code:      code,
			Name:      name,
			Unit:      unit,
			Rate:      decimal.NewFromFloat(value),
			Region:    "default",
			ValidFrom: now,
		}
	}

	return []types.RateEntry{
		rate("ASPHALT", "Asphalt Concrete", types.UnitCubicMetre, 120.0),
		rate("AGGBASE", "Aggregate Base Course", types.UnitCubicMetre, 45.0),
		rate("SUBBASE", "Subbase Material", types.UnitCubicMetre, 35.0),
		rate("EXCAVATION", "Common Excavation", types.UnitCubicMetre, 15.0),
		rate("EMBANKMENT", "Embankment Fill", types.UnitCubicMetre, 25.0),
		rate("CONCRETE", "Structural Concrete", types.UnitCubicMetre, 180.0),
		rate("REBAR", "Reinforcing Steel", types.UnitTon, 1200.0),
		rate("GUARDRAIL", "Guardrail", types.UnitMetre, 80.0),
		rate("DRAINAGE_PIPE", "Drainage Pipe (600mm)", types.UnitMetre, 120.0),
		rate("SIGNS", "Traffic Signs", types.UnitEach, 350.0),
		rate("STRIPING", "Pavement Striping", types.UnitMetre, 2.5),
	}
}

// DefaultItems returns the built-in billable cost item definitions
func DefaultItems() []types.CostItemDef {
	return []types.CostItemDef{
		{
			Code:        types.ItemExcavate,
			Name:        "Roadway Excavation",
			Description: "Excavation of material from cut sections",
			Unit:        types.UnitCubicMetre,
			Category:    types.CategoryEarthworks,
			Subcategory: "excavation",
		},
		{
			Code:        types.ItemFill,
			Name:        "Embankment Construction",
			Description: "Placement and compaction of fill material",
			Unit:        types.UnitCubicMetre,
			Category:    types.CategoryEarthworks,
			Subcategory: "fill",
		},
		{
			Code:        types.ItemAsphaltLayer,
			Name:        "Asphalt Concrete Surface Course",
			Description: "Hot mix asphalt concrete for surface layer",
			Unit:        types.UnitCubicMetre,
			Category:    types.CategoryPavement,
			Subcategory: "surface",
		},
		{
			Code:        types.ItemBaseLayer,
			Name:        "Aggregate Base Course",
			Description: "Crushed aggregate base material",
			Unit:        types.UnitCubicMetre,
			Category:    types.CategoryPavement,
			Subcategory: "base",
		},
		{
			Code:        types.ItemSubbaseLayer,
			Name:        "Granular Subbase",
			Description: "Granular subbase material",
			Unit:        types.UnitCubicMetre,
			Category:    types.CategoryPavement,
			Subcategory: "subbase",
		},
		{
			Code:        types.ItemDrainPipe,
			Name:        "Drainage Pipe",
			Description: "600mm reinforced concrete pipe",
			Unit:        types.UnitMetre,
			Category:    types.CategoryDrainage,
			Subcategory: "pipes",
		},
		{
			Code:        types.ItemGuardRail,
			Name:        "Guardrail",
			Description: "Standard W-beam guardrail with posts",
			Unit:        types.UnitMetre,
			Category:    types.CategoryTrafficControl,
			Subcategory: "barriers",
		},
		{
			Code:        types.ItemTrafficSigns,
			Name:        "Traffic Signs",
			Description: "Regulatory and warning signs",
			Unit:        types.UnitEach,
			Category:    types.CategoryTrafficControl,
			Subcategory: "signs",
		},
		{
			Code:        types.ItemPavementMarking,
			Name:        "Pavement Marking",
			Description: "Thermoplastic pavement striping",
			Unit:        types.UnitMetre,
			Category:    types.CategoryTrafficControl,
			Subcategory: "markings",
		},
	}
}
