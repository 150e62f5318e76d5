// Package db provides the PostgreSQL-backed reference-data store.
// It implements the same catalog contracts as the in-memory catalog and
// is strictly read-only during an estimate.
package db

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"roadcost/core/types"
	"roadcost/internal/errors"
	"roadcost/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS material_rates (
	id          SERIAL PRIMARY KEY,
	code        TEXT NOT NULL,
	name        TEXT NOT NULL,
	unit        TEXT NOT NULL,
	rate        NUMERIC(14,4) NOT NULL,
	region      TEXT NOT NULL,
	valid_from  TIMESTAMPTZ NOT NULL,
	valid_to    TIMESTAMPTZ,
	UNIQUE (code, region, valid_from)
);
CREATE INDEX IF NOT EXISTS idx_material_rates_region ON material_rates (region);

CREATE TABLE IF NOT EXISTS cost_items (
	id          SERIAL PRIMARY KEY,
	code        TEXT NOT NULL UNIQUE,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	unit        TEXT NOT NULL,
	category    TEXT NOT NULL,
	subcategory TEXT NOT NULL
);
`

// Store is a PostgreSQL reference-data store
type Store struct {
	db *sql.DB
}

// Open connects to PostgreSQL and ensures the schema exists
func Open(ctx context.Context, url string) (*Store, error) {
	conn, err := sql.Open("postgres", url)
	if err != nil {
		return nil, errors.Storage("opening database", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, errors.Storage("connecting to database", err)
	}
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, errors.Storage("creating schema", err)
	}
	return &Store{db: conn}, nil
}

// Close releases the connection pool
func (s *Store) Close() error {
	return s.db.Close()
}

// Rates implements catalog.RateCatalog: the {code → rate} snapshot for a
// region, restricted to rates whose validity window covers now.
func (s *Store) Rates(ctx context.Context, region string) (types.RateSnapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT code, rate FROM material_rates
		WHERE region = $1 AND (valid_to IS NULL OR valid_to >= now())`,
		region)
	if err != nil {
		return nil, errors.Storage("querying rates", err)
	}
	defer rows.Close()

	snapshot := make(types.RateSnapshot)
	for rows.Next() {
		var code, rate string
		if err := rows.Scan(&code, &rate); err != nil {
			return nil, errors.Storage("scanning rate row", err)
		}
		d, err := decimal.NewFromString(rate)
		if err != nil {
			return nil, errors.Storage("parsing rate value", err)
		}
		snapshot[code] = d
	}
	return snapshot, rows.Err()
}

// Entries returns all rate entries for a region regardless of validity
func (s *Store) Entries(ctx context.Context, region string) ([]types.RateEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT code, name, unit, rate, region, valid_from, valid_to
		FROM material_rates WHERE region = $1 ORDER BY code`,
		region)
	if err != nil {
		return nil, errors.Storage("querying rate entries", err)
	}
	defer rows.Close()

	var entries []types.RateEntry
	for rows.Next() {
		var e types.RateEntry
		var rate string
		var validTo sql.NullTime
		if err := rows.Scan(&e.Code, &e.Name, &e.Unit, &rate, &e.Region, &e.ValidFrom, &validTo); err != nil {
			return nil, errors.Storage("scanning rate entry", err)
		}
		d, err := decimal.NewFromString(rate)
		if err != nil {
			return nil, errors.Storage("parsing rate value", err)
		}
		e.Rate = d
		if validTo.Valid {
			t := validTo.Time
			e.ValidTo = &t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Items implements catalog.CostItemCatalog
func (s *Store) Items(ctx context.Context) (types.ItemCatalog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT code, name, description, unit, category, subcategory FROM cost_items`)
	if err != nil {
		return nil, errors.Storage("querying cost items", err)
	}
	defer rows.Close()

	items := make(types.ItemCatalog)
	for rows.Next() {
		var item types.CostItemDef
		var category string
		if err := rows.Scan(&item.Code, &item.Name, &item.Description, &item.Unit, &category, &item.Subcategory); err != nil {
			return nil, errors.Storage("scanning cost item", err)
		}
		item.Category = types.ParseCategory(category)
		items[item.Code] = item
	}
	return items, rows.Err()
}

// PutRates inserts rate entries, skipping duplicates
func (s *Store) PutRates(ctx context.Context, entries []types.RateEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Storage("beginning transaction", err)
	}
	defer tx.Rollback()

	for _, e := range entries {
		var validTo interface{}
		if e.ValidTo != nil {
			validTo = *e.ValidTo
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO material_rates (code, name, unit, rate, region, valid_from, valid_to)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (code, region, valid_from) DO UPDATE
			SET name = EXCLUDED.name, unit = EXCLUDED.unit, rate = EXCLUDED.rate, valid_to = EXCLUDED.valid_to`,
			e.Code, e.Name, e.Unit, e.Rate.String(), e.Region, e.ValidFrom, validTo)
		if err != nil {
			return errors.Storage("inserting rate", err)
		}
	}
	return tx.Commit()
}

// PutItems inserts cost item definitions, updating existing codes
func (s *Store) PutItems(ctx context.Context, items []types.CostItemDef) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Storage("beginning transaction", err)
	}
	defer tx.Rollback()

	for _, item := range items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cost_items (code, name, description, unit, category, subcategory)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (code) DO UPDATE
			SET name = EXCLUDED.name, description = EXCLUDED.description,
			    unit = EXCLUDED.unit, category = EXCLUDED.category,
			    subcategory = EXCLUDED.subcategory`,
			item.Code, item.Name, item.Description, item.Unit, item.Category.String(), item.Subcategory)
		if err != nil {
			return errors.Storage("inserting cost item", err)
		}
	}
	return tx.Commit()
}

// SeedDefaults loads default reference data into an empty store
func (s *Store) SeedDefaults(ctx context.Context, rates []types.RateEntry, items []types.CostItemDef) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM material_rates`).Scan(&count); err != nil {
		return errors.Storage("counting rates", err)
	}
	if count > 0 {
		return nil
	}

	logging.Info("seeding default reference data",
		zap.Int("rates", len(rates)),
		zap.Int("items", len(items)),
	)

	if err := s.PutRates(ctx, rates); err != nil {
		return err
	}
	return s.PutItems(ctx, items)
}
