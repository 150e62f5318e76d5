package report

import (
	"encoding/csv"
	"io"

	"roadcost/core/estimate"
)

// ledgerColumns is the column order shared by the CSV and Excel writers
var ledgerColumns = []string{
	"item_code", "item_name", "category", "subcategory",
	"quantity", "unit", "unit_rate", "cost",
}

// CSVWriter renders the ledger as a flat CSV table
type CSVWriter struct{}

// Format implements Writer
func (w *CSVWriter) Format() Format { return FormatCSV }

// Extension implements Writer
func (w *CSVWriter) Extension() string { return "csv" }

// Render implements Writer
func (w *CSVWriter) Render(out io.Writer, result *estimate.Result) error {
	cw := csv.NewWriter(out)

	if err := cw.Write(ledgerColumns); err != nil {
		return err
	}

	for _, item := range result.Ledger.Items {
		record := []string{
			item.ItemCode,
			item.ItemName,
			item.Category.String(),
			item.Subcategory,
			item.Quantity.StringFixed(2),
			item.Unit,
			item.UnitRate.StringFixed(2),
			item.Cost.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
