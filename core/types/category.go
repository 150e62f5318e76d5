// Package types defines the domain types for road cost estimation.
package types

// Category is a closed set of cost aggregation labels. Free-form category
// strings are never used as aggregation keys; unknown labels fold into
// CategoryMiscellaneous.
type Category string

const (
	CategoryEarthworks     Category = "earthworks"
	CategoryPavement       Category = "pavement"
	CategoryDrainage       Category = "drainage"
	CategoryStructures     Category = "structures"
	CategoryTrafficControl Category = "traffic_control"
	CategoryLandscaping    Category = "landscaping"
	CategoryMiscellaneous  Category = "miscellaneous"
	CategoryIndirectCosts  Category = "indirect_costs"
	CategoryContingency    Category = "contingency"
)

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// Valid reports whether the category is one of the closed set
func (c Category) Valid() bool {
	switch c {
	case CategoryEarthworks, CategoryPavement, CategoryDrainage,
		CategoryStructures, CategoryTrafficControl, CategoryLandscaping,
		CategoryMiscellaneous, CategoryIndirectCosts, CategoryContingency:
		return true
	}
	return false
}

// ParseCategory maps a label to a category, folding unknown labels into
// CategoryMiscellaneous so typos cannot create untracked buckets.
func ParseCategory(label string) Category {
	c := Category(label)
	if c.Valid() {
		return c
	}
	return CategoryMiscellaneous
}

// Categories returns all categories in breakdown order
func Categories() []Category {
	return []Category{
		CategoryEarthworks,
		CategoryPavement,
		CategoryDrainage,
		CategoryStructures,
		CategoryTrafficControl,
		CategoryLandscaping,
		CategoryMiscellaneous,
		CategoryIndirectCosts,
		CategoryContingency,
	}
}
