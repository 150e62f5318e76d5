// Package catalog provides the reference-data contracts and the built-in
// in-memory implementation seeded with the default rates and cost items.
package catalog

import (
	"context"
	"sync"
	"time"

	"roadcost/core/types"
)

// RateCatalog supplies unit rates per material code per region. The
// returned snapshot is restricted to rates whose validity window covers
// the current time.
type RateCatalog interface {
	// Rates returns the {code → rate} snapshot for a region
	Rates(ctx context.Context, region string) (types.RateSnapshot, error)
}

// CostItemCatalog supplies the fixed list of billable cost items
type CostItemCatalog interface {
	// Items returns the {code → definition} catalog
	Items(ctx context.Context) (types.ItemCatalog, error)
}

// Catalog is an in-memory reference-data store implementing both catalog
// interfaces. Reads take a snapshot; writes replace entries under a lock,
// so concurrent estimates always see consistent data.
type Catalog struct {
	mu    sync.RWMutex
	rates []types.RateEntry
	items map[string]types.CostItemDef

	// now is the clock used for validity-window filtering
	now func() time.Time
}

// New returns an empty in-memory catalog
func New() *Catalog {
	return &Catalog{
		items: make(map[string]types.CostItemDef),
		now:   time.Now,
	}
}

// NewWithDefaults returns a catalog seeded with the default reference data
func NewWithDefaults() *Catalog {
	c := New()
	c.PutRates(DefaultRates())
	c.PutItems(DefaultItems())
	return c
}

// PutRates adds rate entries to the catalog
func (c *Catalog) PutRates(entries []types.RateEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rates = append(c.rates, entries...)
}

// PutItems adds cost item definitions to the catalog
func (c *Catalog) PutItems(items []types.CostItemDef) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range items {
		c.items[item.Code] = item
	}
}

// Rates implements RateCatalog
func (c *Catalog) Rates(_ context.Context, region string) (types.RateSnapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.now()
	snapshot := make(types.RateSnapshot)
	for _, r := range c.rates {
		if r.Region != region {
			continue
		}
		if !r.ValidAt(now) {
			continue
		}
		snapshot[r.Code] = r.Rate
	}
	return snapshot, nil
}

// Entries returns all rate entries for a region regardless of validity.
// Used by the reference-data endpoints and the CLI.
func (c *Catalog) Entries(_ context.Context, region string) ([]types.RateEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var entries []types.RateEntry
	for _, r := range c.rates {
		if r.Region == region {
			entries = append(entries, r)
		}
	}
	return entries, nil
}

// Items implements CostItemCatalog
func (c *Catalog) Items(_ context.Context) (types.ItemCatalog, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make(types.ItemCatalog, len(c.items))
	for code, item := range c.items {
		items[code] = item
	}
	return items, nil
}
