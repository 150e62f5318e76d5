// Package hclrates loads regional rate definitions from HCL files.
//
// A rates file holds one or more region blocks:
//
//	region "north" {
//	  rate "ASPHALT" {
//	    name = "Asphalt Concrete"
//	    unit = "m³"
//	    rate = 135.0
//	  }
//	}
package hclrates

import (
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"roadcost/core/types"
	"roadcost/internal/errors"
)

type ratesFile struct {
	Regions []regionBlock `hcl:"region,block"`
}

type regionBlock struct {
	Name  string      `hcl:"name,label"`
	Rates []rateBlock `hcl:"rate,block"`
}

type rateBlock struct {
	Code      string  `hcl:"code,label"`
	Name      string  `hcl:"name"`
	Unit      string  `hcl:"unit"`
	Rate      float64 `hcl:"rate"`
	ValidFrom *string `hcl:"valid_from,optional"`
	ValidTo   *string `hcl:"valid_to,optional"`
}

// Load parses an HCL rates file into rate entries
func Load(path string) ([]types.RateEntry, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeConfig, "parsing rates file", diags)
	}

	var parsed ratesFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeConfig, "decoding rates file", diags)
	}

	return toEntries(&parsed)
}

// LoadBytes parses HCL rate definitions from memory
func LoadBytes(src []byte, filename string) ([]types.RateEntry, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeConfig, "parsing rates file", diags)
	}

	var parsed ratesFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeConfig, "decoding rates file", diags)
	}

	return toEntries(&parsed)
}

func toEntries(parsed *ratesFile) ([]types.RateEntry, error) {
	now := time.Now()
	var entries []types.RateEntry

	for _, region := range parsed.Regions {
		for _, r := range region.Rates {
			if r.Rate <= 0 {
				return nil, errors.Validationf("rate %s in region %s must be positive, got %.4f", r.Code, region.Name, r.Rate)
			}

			entry := types.RateEntry{
				Code:      r.Code,
				Name:      r.Name,
				Unit:      r.Unit,
				Rate:      decimal.NewFromFloat(r.Rate),
				Region:    region.Name,
				ValidFrom: now,
			}

			if r.ValidFrom != nil {
				t, err := parseTimestamp(*r.ValidFrom)
				if err != nil {
					return nil, fmt.Errorf("rate %s valid_from: %w", r.Code, err)
				}
				entry.ValidFrom = t
			}
			if r.ValidTo != nil {
				t, err := parseTimestamp(*r.ValidTo)
				if err != nil {
					return nil, fmt.Errorf("rate %s valid_to: %w", r.Code, err)
				}
				entry.ValidTo = &t
			}

			entries = append(entries, entry)
		}
	}

	return entries, nil
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
