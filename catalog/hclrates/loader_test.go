// Package hclrates_test - HCL rates file parsing tests
package hclrates_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"roadcost/catalog/hclrates"
	"roadcost/internal/errors"
)

const mountainRates = `
region "mountain" {
  rate "ASPHALT" {
    name = "Asphalt Concrete"
    unit = "m³"
    rate = 145.0
  }

  rate "EXCAVATION" {
    name       = "Common Excavation"
    unit       = "m³"
    rate       = 22.5
    valid_from = "2026-01-01"
    valid_to   = "2026-12-31"
  }
}

region "coastal" {
  rate "ASPHALT" {
    name = "Asphalt Concrete"
    unit = "m³"
    rate = 128.0
  }
}
`

func TestLoadBytes(t *testing.T) {
	entries, err := hclrates.LoadBytes([]byte(mountainRates), "rates.hcl")
	if err != nil {
		t.Fatalf("LoadBytes failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	asphalt := entries[0]
	if asphalt.Code != "ASPHALT" || asphalt.Region != "mountain" {
		t.Errorf("unexpected first entry: %+v", asphalt)
	}
	if !asphalt.Rate.Equal(decimal.NewFromFloat(145.0)) {
		t.Errorf("expected rate 145, got %s", asphalt.Rate)
	}
	if asphalt.ValidTo != nil {
		t.Error("expected open-ended validity without valid_to")
	}

	excavation := entries[1]
	wantFrom := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !excavation.ValidFrom.Equal(wantFrom) {
		t.Errorf("expected valid_from %s, got %s", wantFrom, excavation.ValidFrom)
	}
	if excavation.ValidTo == nil {
		t.Fatal("expected valid_to to be set")
	}
	wantTo := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	if !excavation.ValidTo.Equal(wantTo) {
		t.Errorf("expected valid_to %s, got %s", wantTo, excavation.ValidTo)
	}

	coastal := entries[2]
	if coastal.Region != "coastal" {
		t.Errorf("expected coastal region, got %s", coastal.Region)
	}
}

func TestLoadBytesRejectsNonPositiveRate(t *testing.T) {
	src := `
region "default" {
  rate "ASPHALT" {
    name = "Asphalt Concrete"
    unit = "m³"
    rate = 0
  }
}
`
	_, err := hclrates.LoadBytes([]byte(src), "rates.hcl")
	if err == nil {
		t.Fatal("expected validation error for zero rate")
	}
	if !errors.IsType(err, errors.TypeValidation) {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestLoadBytesRejectsMalformedHCL(t *testing.T) {
	_, err := hclrates.LoadBytes([]byte(`region "default" {`), "rates.hcl")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected CONFIG_ERROR, got %v", err)
	}
}

func TestLoadBytesRejectsBadTimestamp(t *testing.T) {
	src := `
region "default" {
  rate "ASPHALT" {
    name       = "Asphalt Concrete"
    unit       = "m³"
    rate       = 120.0
    valid_from = "January 1st"
  }
}
`
	_, err := hclrates.LoadBytes([]byte(src), "rates.hcl")
	if err == nil {
		t.Fatal("expected timestamp parse error")
	}
}
